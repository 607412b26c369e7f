package demo

import (
	"mesalink_server/lib"
	"mesalink_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// HandleDemoRequest takes a demo enquiry from the landing page. The enquiry
// is always persisted; when the email relay is down the response carries a
// mailto fallback instead of an error.
func (drm *DemoRoutesManager) HandleDemoRequest(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.DemoRequestInput](r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Please check the form and try again"), gecho.WithData(err), gecho.Send())
		return
	}

	result, err := drm.emailService.RelayDemoRequest(r.Context(), body)
	if err != nil {
		drm.logger.Error("Failed to handle demo request", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to submit your request. Please try again"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Demo request received"),
		gecho.WithData(result),
		gecho.Send(),
	)
}
