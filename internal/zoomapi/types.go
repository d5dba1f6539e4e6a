package zoomapi

import "time"

// User is one account member, as returned by the user listing endpoint.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Recording is one archived meeting instance. UUID is the identity used for
// completion tracking; Files holds every downloadable artifact (video, audio,
// transcript, chat) the meeting produced.
type Recording struct {
	UUID      string          `json:"uuid"`
	Topic     string          `json:"topic"`
	StartTime time.Time       `json:"start_time"`
	Files     []RecordingFile `json:"recording_files"`
}

// RecordingFile is a single downloadable artifact. DownloadURL is
// pre-authorized by the server apart from the access token the caller must
// append as a query parameter.
type RecordingFile struct {
	FileType    string `json:"file_type"`
	DownloadURL string `json:"download_url"`
}

type userListResponse struct {
	Users []User `json:"users"`
}

type recordingPage struct {
	TotalRecords  int         `json:"total_records"`
	PageCount     int         `json:"page_count"`
	Meetings      []Recording `json:"meetings"`
	NextPageToken string      `json:"next_page_token"`
}
