package domain

import (
	"time"

	"github.com/ticketera/ticket-platform/shared/models"
)

// NotificationType selects the template of the notification service
type NotificationType string

const (
	NotificationTicketPurchased NotificationType = "TICKET_COMPRADO"
	NotificationPaymentRejected NotificationType = "PAGO_RECHAZADO"
	NotificationWelcome         NotificationType = "BIENVENIDA"
)

// Notification is a fire-and-forget message for a recipient
type Notification struct {
	Type      NotificationType       `json:"tipo"`
	Recipient string                 `json:"destinatario"`
	Data      map[string]interface{} `json:"datos"`
}

// TicketPurchasedNotification builds the purchase confirmation
func TicketPurchasedNotification(email string, ticket *Ticket, event EventDetails) Notification {
	data := map[string]interface{}{
		"ticketId":     ticket.TicketID,
		"eventoNombre": ticket.EventName,
		"tipoEntrada":  ticket.TicketTypeName,
		"cantidad":     ticket.Quantity,
		"total":        ticket.TotalPaid.Float(),
		"paymentId":    ticket.PaymentID,
	}
	if !event.Date.IsZero() {
		data["fechaEvento"] = event.Date.Format(time.RFC3339)
	}

	return Notification{
		Type:      NotificationTicketPurchased,
		Recipient: email,
		Data:      data,
	}
}

// PaymentRejectedNotification tells the buyer why the charge was declined
func PaymentRejectedNotification(email, eventName string, amount models.Money, reason string) Notification {
	return Notification{
		Type:      NotificationPaymentRejected,
		Recipient: email,
		Data: map[string]interface{}{
			"eventoNombre": eventName,
			"monto":        amount.Float(),
			"motivo":       reason,
		},
	}
}

func WelcomeNotification(user *User) Notification {
	return Notification{
		Type:      NotificationWelcome,
		Recipient: user.Email,
		Data: map[string]interface{}{
			"nombreUsuario": user.Name,
		},
	}
}
