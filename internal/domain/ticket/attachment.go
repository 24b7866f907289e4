package ticket

import (
	"fmt"
	"time"

	vo "fixmylab/internal/domain/ticket/valueobjects"
)

// Attachment is a media file linked to a ticket. Attachments are created
// during or right after ticket creation and are never updated; they go away
// only when the ticket is deleted.
type Attachment struct {
	id         uint
	ticketID   uint
	fileURL    string
	fileType   vo.FileKind
	uploadedAt time.Time
}

func NewAttachment(ticketID uint, fileURL string, fileType vo.FileKind) (*Attachment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(fileURL) == 0 {
		return nil, fmt.Errorf("file URL is required")
	}
	if !fileType.IsValid() {
		return nil, fmt.Errorf("invalid file type: %s", fileType)
	}
	return &Attachment{
		ticketID:   ticketID,
		fileURL:    fileURL,
		fileType:   fileType,
		uploadedAt: time.Now(),
	}, nil
}

func ReconstructAttachment(
	id uint,
	ticketID uint,
	fileURL string,
	fileType vo.FileKind,
	uploadedAt time.Time,
) (*Attachment, error) {
	if id == 0 {
		return nil, fmt.Errorf("attachment ID cannot be zero")
	}
	if !fileType.IsValid() {
		return nil, fmt.Errorf("invalid file type: %s", fileType)
	}
	return &Attachment{
		id:         id,
		ticketID:   ticketID,
		fileURL:    fileURL,
		fileType:   fileType,
		uploadedAt: uploadedAt,
	}, nil
}

func (a *Attachment) ID() uint              { return a.id }
func (a *Attachment) TicketID() uint        { return a.ticketID }
func (a *Attachment) FileURL() string       { return a.fileURL }
func (a *Attachment) FileType() vo.FileKind { return a.fileType }
func (a *Attachment) UploadedAt() time.Time { return a.uploadedAt }

func (a *Attachment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("attachment ID cannot be zero")
	}
	a.id = id
	return nil
}
