package service

import (
	"fmt"
	"log"
)

// SenderService sends booking confirmations through SendGrid and Twilio.
// Sends run in their own goroutines so the booking response never waits on
// a provider; failures are logged and otherwise dropped.
type SenderService struct{}

func NewSenderService() *SenderService {
	return &SenderService{}
}

func (s *SenderService) SendBookingConfirmation(kind, email, name, phone, summary string) {
	toName := name
	if toName == "" {
		toName = email
	}

	subject := fmt.Sprintf("Your JetSetGo %s booking is confirmed", kind)
	plainBody := fmt.Sprintf(
		"Hello %s,\n\nYour %s booking is confirmed.\n%s\n\n"+
			"Thank you for choosing JetSetGo.",
		toName, kind, summary,
	)
	htmlBody := fmt.Sprintf(
		"<p>Hello %s,</p><p>Your %s booking is confirmed.<br>%s</p><p>Thank you for choosing JetSetGo.</p>",
		toName, kind, summary,
	)

	go func() {
		if err := SendEmailWithSendGrid(email, toName, subject, plainBody, htmlBody); err != nil {
			log.Printf("%s booking: confirmation email to %s failed: %v", kind, email, err)
		}
	}()

	// Driver bookings carry no phone number.
	if phone == "" {
		return
	}
	go func() {
		sms := fmt.Sprintf("JetSetGo: your %s booking is confirmed. %s", kind, summary)
		if err := SendSMS(phone, sms); err != nil {
			log.Printf("%s booking: confirmation SMS to %s failed: %v", kind, phone, err)
		}
	}()
}
