package models

import "time"

type FileType string

const (
	FileTypeText  FileType = "text"
	FileTypePDF   FileType = "pdf"
	FileTypeAudio FileType = "audio"
	FileTypeImage FileType = "image"
)

var ValidFileTypes = map[FileType]bool{
	FileTypeText:  true,
	FileTypePDF:   true,
	FileTypeAudio: true,
	FileTypeImage: true,
}

type Note struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content,omitempty"`
	FileURL   string    `json:"file_url,omitempty"`
	FileType  FileType  `json:"file_type"`
	FileName  string    `json:"file_name,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateNoteRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content,omitempty"`
	FileURL  string   `json:"file_url,omitempty"`
	FileType FileType `json:"file_type"`
	FileName string   `json:"file_name,omitempty"`
	Subject  string   `json:"subject,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

type UpdateNoteRequest struct {
	Title   *string   `json:"title,omitempty"`
	Content *string   `json:"content,omitempty"`
	Subject *string   `json:"subject,omitempty"`
	Tags    *[]string `json:"tags,omitempty"`
}

type NoteListResponse struct {
	Notes []Note `json:"notes"`
	Total int    `json:"total"`
}
