package events

// NewNotification is published by the HTTP handler when a notification request
// passes validation. The HTTP response is written before subscribers run.
const NewNotification = "newNotification"

// NewNotificationPayload carries the validated fields of a notification
// request to the subscribers of NewNotification.
type NewNotificationPayload struct {
	Message string
	Type    string
}
