package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"shaqyrtu-backend/config"
	"shaqyrtu-backend/models"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"google.golang.org/api/option"
)

type NotificationService struct {
	fcmOnce sync.Once
	fcm     *messaging.Client
}

var notifService *NotificationService

func GetNotificationService() *NotificationService {
	if notifService == nil {
		notifService = &NotificationService{}
	}
	return notifService
}

// ============================================================
// PUSH NOTIFICATIONS via Firebase Admin SDK
// ============================================================

func (ns *NotificationService) fcmClient(ctx context.Context) *messaging.Client {
	ns.fcmOnce.Do(func() {
		if config.AppConfig.FirebaseCredPath == "" {
			log.Printf("⚠️  Firebase credentials not set, push disabled")
			return
		}
		app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(config.AppConfig.FirebaseCredPath))
		if err != nil {
			log.Printf("❌ Firebase init error: %v", err)
			return
		}
		client, err := app.Messaging(ctx)
		if err != nil {
			log.Printf("❌ Firebase messaging error: %v", err)
			return
		}
		ns.fcm = client
	})
	return ns.fcm
}

func (ns *NotificationService) sendPush(ctx context.Context, fcmToken string, title string, body string, data map[string]string) {
	if fcmToken == "" {
		return
	}
	client := ns.fcmClient(ctx)
	if client == nil {
		return
	}

	_, err := client.Send(ctx, &messaging.Message{
		Token: fcmToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	})
	if err != nil {
		log.Printf("❌ FCM send error: %v", err)
		return
	}
	log.Printf("✅ Push notification sent")
}

// ============================================================
// EMAIL NOTIFICATIONS via SendGrid
// ============================================================

func (ns *NotificationService) sendEmail(toEmail string, toName string, subject string, htmlBody string) {
	if config.AppConfig.SendGridAPIKey == "" {
		log.Printf("⚠️  SendGrid API key not set, skipping email to %s", toEmail)
		return
	}
	if toEmail == "" {
		return
	}

	from := mail.NewEmail(config.AppConfig.AppName, config.AppConfig.SendGridFrom)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridAPIKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("❌ Email send error: %v", err)
		return
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		log.Printf("✅ Email sent to %s", toEmail)
	} else {
		log.Printf("⚠️  SendGrid returned status: %d", resp.StatusCode)
	}
}

// ============================================================
// NOTIFICATION EVENTS
// ============================================================

// NotifyGuestResponse sends push + email to the invite owner when a
// guest submits an RSVP. Best-effort, intended to run off the request
// goroutine.
func (ns *NotificationService) NotifyGuestResponse(owner models.User, invite models.Invite, response models.GuestResponse) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var title, body string
	if response.Attending {
		title = fmt.Sprintf("%s келеді! 🎉", response.GuestName)
		body = fmt.Sprintf("%s: %d қонақ — \"%s\"", response.GuestName, response.GuestsCount, invite.Title)
	} else {
		title = fmt.Sprintf("%s келе алмайды", response.GuestName)
		body = fmt.Sprintf("\"%s\" шақыртуына жауап келді", invite.Title)
	}

	ns.sendPush(ctx, owner.FCMToken, title, body, map[string]string{
		"type":      "guest_response",
		"invite_id": invite.ID.String(),
	})

	htmlBody := buildResponseEmailHTML(owner.FullName, invite, response)
	ns.sendEmail(owner.Email, owner.FullName, title, htmlBody)
}

// ============================================================
// EMAIL TEMPLATES
// ============================================================

func buildResponseEmailHTML(ownerName string, invite models.Invite, response models.GuestResponse) string {
	status := "✅ Келеді"
	if !response.Attending {
		status = "❌ Келе алмайды"
	}
	note := ""
	if response.Note != "" {
		note = fmt.Sprintf(`<p style="margin: 4px 0; color: #666;">Тілек: %s</p>`, response.Note)
	}
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f5f5f5;">
	<div style="background: white; border-radius: 12px; padding: 32px; box-shadow: 0 2px 8px rgba(0,0,0,0.1);">
		<h2 style="color: #6b1f2e; margin-top: 0;">💌 Жаңа жауап</h2>
		<p>Сәлем <strong>%s</strong>,</p>
		<p>"<strong>%s</strong>" шақыртуыңызға жаңа жауап келді:</p>
		<div style="background: #f8f9fa; border-radius: 8px; padding: 16px; margin: 16px 0;">
			<p style="margin: 4px 0; font-size: 18px;"><strong>%s</strong> · %s</p>
			<p style="margin: 4px 0; color: #666;">Қонақтар саны: %d</p>
			<p style="margin: 4px 0; color: #666;">Телефон: %s</p>
			%s
		</div>
		<p style="color: #999; font-size: 12px; margin-top: 24px;">— %s</p>
	</div>
</body>
</html>`, ownerName, invite.Title, response.GuestName, status, response.GuestsCount, response.Phone, note, config.AppConfig.AppName)
}
