package ticket

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	vo "fixmylab/internal/domain/ticket/valueobjects"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("ticketstatus", func(fl validator.FieldLevel) bool {
			return vo.TicketStatus(fl.Field().String()).IsValid()
		})
	}
}
