package commands

import (
	"fmt"
	"time"

	"salon-backend/internal/domain/account"
	"salon-backend/internal/domain/appointment"
	"salon-backend/internal/domain/notification"
)

const startLayout = "Mon 2 Jan 2006, 3:04 PM"

var appointmentSubjects = map[string]string{
	notification.TopicAppointmentBooked:    "Your appointment request was received",
	notification.TopicAppointmentConfirmed: "Your appointment is confirmed",
	notification.TopicAppointmentCompleted: "Thanks for visiting",
	notification.TopicAppointmentCancelled: "Your appointment was cancelled",
	notification.TopicAppointmentReminder:  "Reminder: your appointment is tomorrow",
}

// appointmentNotices builds the outbox rows for one appointment change: an email,
// an SMS when the customer has a phone, and an event.
func appointmentNotices(topic string, a *appointment.Appointment, customer *account.Account, loc *time.Location, now time.Time) ([]notification.Job, error) {
	when := a.TimeSlot().Start().In(loc).Format(startLayout)
	subject := appointmentSubjects[topic]
	body := fmt.Sprintf("Hi %s, %s (%s).", customer.Name(), subject, when)

	email, err := notification.NewEmail(topic, notification.EmailPayload{
		To:      customer.Email().Value(),
		Subject: subject,
		Body:    body,
	}, now)
	if err != nil {
		return nil, err
	}
	jobs := []notification.Job{email}

	if !customer.Phone().IsZero() {
		sms, err := notification.NewSMS(topic, notification.SMSPayload{To: customer.Phone().Value(), Body: body}, now)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, sms)
	}

	event, err := notification.NewEvent(topic, a.ID().String(), map[string]any{
		"appointment_id": a.ID(),
		"customer_id":    a.CustomerID(),
		"stylist_id":     a.StylistID(),
		"branch_id":      a.BranchID(),
		"status":         a.Status(),
		"start_at":       a.TimeSlot().Start(),
		"price_cents":    a.PriceCents(),
	}, now)
	if err != nil {
		return nil, err
	}
	return append(jobs, event), nil
}
