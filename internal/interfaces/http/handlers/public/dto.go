package public

import (
	"fmt"
	"mime/multipart"
	"time"

	"github.com/gin-gonic/gin"

	"fixmylab/internal/application/ticket/usecases"
	"fixmylab/internal/shared/errors"
)

const dateLayout = "2006-01-02"

// maxIntakeFiles bounds how many attachments one submission can carry.
const maxIntakeFiles = 5

// intakeCommand maps the multipart intake form onto a create command.
// Priority is always low for public submissions.
func intakeCommand(c *gin.Context, form *multipart.Form, sessionID string) (usecases.CreateTicketCommand, error) {
	cmd := usecases.CreateTicketCommand{
		CustomerName:   c.PostForm("customer_name"),
		CustomerEmail:  c.PostForm("customer_email"),
		CustomerPhone:  c.PostForm("customer_phone"),
		DeviceType:     c.PostForm("device_type"),
		Description:    c.PostForm("description"),
		Priority:       "low",
		OrderID:        c.PostForm("order_id"),
		DevicePassword: c.PostForm("device_password"),
		UserID:         sessionID,
	}

	if raw := c.PostForm("purchase_date"); raw != "" {
		d, err := time.Parse(dateLayout, raw)
		if err != nil {
			return cmd, errors.NewValidationError(fmt.Sprintf("invalid date %q, want YYYY-MM-DD", raw))
		}
		cmd.PurchaseDate = &d
	}

	fileHeaders := form.File["files"]
	if len(fileHeaders) > maxIntakeFiles {
		return cmd, errors.NewValidationError(fmt.Sprintf("at most %d files per submission", maxIntakeFiles))
	}

	for _, fh := range fileHeaders {
		f, err := fh.Open()
		if err != nil {
			closeFiles(cmd.Files)
			return cmd, errors.NewBadRequestError(fmt.Sprintf("failed to read file %s", fh.Filename))
		}
		cmd.Files = append(cmd.Files, usecases.UploadFile{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Content:     f,
		})
	}

	return cmd, nil
}

func closeFiles(files []usecases.UploadFile) {
	for _, f := range files {
		if closer, ok := f.Content.(interface{ Close() error }); ok {
			closer.Close()
		}
	}
}
