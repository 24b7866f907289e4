// Package notification composes and dispatches the lifecycle emails: new
// ticket, status change and the old-tickets digest. Every send is
// best-effort: a gateway failure is logged and reported as false, never as
// an error, so the primary operation it accompanies always stands.
package notification

import (
	"context"
	"fmt"
	"html"
	"strings"

	"fixmylab/internal/domain/setting"
	"fixmylab/internal/domain/ticket"
	vo "fixmylab/internal/domain/ticket/valueobjects"
	"fixmylab/internal/shared/biztime"
	"fixmylab/internal/shared/logger"
)

// Mailer is the outbound mail gateway port.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

type Service struct {
	settings      setting.Repository
	tickets       ticket.Repository
	mailer        Mailer
	baseURL       string
	publicBaseURL string
	logger        logger.Interface
}

func NewService(
	settings setting.Repository,
	tickets ticket.Repository,
	mailer Mailer,
	baseURL string,
	publicBaseURL string,
	log logger.Interface,
) *Service {
	return &Service{
		settings:      settings,
		tickets:       tickets,
		mailer:        mailer,
		baseURL:       strings.TrimRight(baseURL, "/"),
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        log,
	}
}

// adminRecipient resolves the admin address when the given toggle reads as
// the literal "true". The second return is false when the notification must
// not be sent at all.
func (s *Service) adminRecipient(ctx context.Context, toggle setting.Key) (string, bool) {
	enabled, err := s.settings.Get(ctx, toggle)
	if err != nil {
		s.logger.Errorw("failed to read notification toggle", "key", toggle, "error", err)
		return "", false
	}
	if !enabled.BoolValue() {
		s.logger.Debugw("notification disabled", "key", toggle)
		return "", false
	}

	admin, err := s.settings.Get(ctx, setting.KeyAdminEmail)
	if err != nil {
		s.logger.Errorw("failed to read admin email setting", "error", err)
		return "", false
	}
	address := admin.StringValue()
	if address == "" {
		s.logger.Warnw("admin email not configured, skipping notification", "key", toggle)
		return "", false
	}
	return address, true
}

func (s *Service) send(to, subject, body string) bool {
	if err := s.mailer.Send(to, subject, body); err != nil {
		s.logger.Errorw("failed to send email", "to", to, "subject", subject, "error", err)
		return false
	}
	s.logger.Infow("email sent", "to", to, "subject", subject)
	return true
}

func (s *Service) ticketURL(id uint) string {
	return fmt.Sprintf("%s/tickets/%d", s.baseURL, id)
}

func (s *Service) publicTicketURL(id uint) string {
	return fmt.Sprintf("%s/public/tickets/%d", s.publicBaseURL, id)
}

// esc escapes customer-controlled text before it is interpolated into an
// HTML mail body. Intake fields are free text; without this a submission
// could inject markup into the admin's mail client.
func esc(s string) string {
	return html.EscapeString(s)
}

// SendNewTicket notifies the admin that a ticket was created. Returns false
// when disabled, unconfigured or the gateway fails.
func (s *Service) SendNewTicket(ctx context.Context, t *ticket.Ticket) bool {
	adminEmail, ok := s.adminRecipient(ctx, setting.KeyNotifyNewTicket)
	if !ok {
		return false
	}

	subject := fmt.Sprintf("Nuovo Ticket di Riparazione: %s", t.Number())
	body := fmt.Sprintf(`
		<h2>Nuovo Ticket di Riparazione Creato</h2>
		<p><strong>Numero Ticket:</strong> %s</p>
		<p><strong>Cliente:</strong> %s</p>
		<p><strong>Email:</strong> %s</p>
		<p><strong>Dispositivo:</strong> %s</p>
		<p><strong>Descrizione:</strong> %s</p>
		<p><strong>Stato:</strong> %s</p>
		<p><strong>Priorità:</strong> %s</p>
		<p>Visualizza i dettagli del ticket: <a href="%s">%s</a></p>
	`,
		t.Number(), esc(t.CustomerName()), esc(t.CustomerEmail()), esc(t.DeviceType()),
		esc(t.Description()), t.Status().Label(), t.Priority(), s.ticketURL(t.ID()), s.ticketURL(t.ID()))

	return s.send(adminEmail, subject, body)
}

// SendStatusChange notifies both the admin and the customer. The two sends
// are independent; the overall result is true when at least one succeeds.
func (s *Service) SendStatusChange(ctx context.Context, t *ticket.Ticket, oldStatus vo.TicketStatus) bool {
	adminEmail, ok := s.adminRecipient(ctx, setting.KeyNotifyStatusChange)
	if !ok {
		return false
	}

	adminSubject := fmt.Sprintf("Stato Ticket Aggiornato: %s", t.Number())
	adminBody := fmt.Sprintf(`
		<h2>Stato Ticket di Riparazione Aggiornato</h2>
		<p><strong>Numero Ticket:</strong> %s</p>
		<p><strong>Cliente:</strong> %s</p>
		<p><strong>Stato Cambiato:</strong> %s &rarr; %s</p>
		<p><strong>Dispositivo:</strong> %s</p>
		<p>Visualizza i dettagli del ticket: <a href="%s">%s</a></p>
	`,
		t.Number(), esc(t.CustomerName()), oldStatus.Label(), t.Status().Label(),
		esc(t.DeviceType()), s.ticketURL(t.ID()), s.ticketURL(t.ID()))

	adminSent := s.send(adminEmail, adminSubject, adminBody)

	customerSubject := fmt.Sprintf("Lo stato del tuo ticket di riparazione è stato aggiornato: %s", t.Number())
	customerBody := fmt.Sprintf(`
		<h2>Lo Stato del Tuo Ticket di Riparazione è Stato Aggiornato</h2>
		<p>Gentile %s,</p>
		<p>Lo stato del tuo ticket di riparazione è stato aggiornato:</p>
		<p><strong>Numero Ticket:</strong> %s</p>
		<p><strong>Nuovo Stato:</strong> %s</p>
		<p><strong>Dispositivo:</strong> %s</p>
		<p>Puoi visualizzare i dettagli del tuo ticket: <a href="%s">%s</a></p>
		<p>Grazie per aver scelto il nostro servizio.</p>
	`,
		esc(t.CustomerName()), t.Number(), t.Status().Label(), esc(t.DeviceType()),
		s.publicTicketURL(t.ID()), s.publicTicketURL(t.ID()))

	customerSent := s.send(t.CustomerEmail(), customerSubject, customerBody)

	return adminSent || customerSent
}

// SendOldTicketsDigest emails the admin one digest listing every open ticket
// older than the configured threshold. Returns false when disabled,
// unconfigured, nothing matches, or the gateway fails.
func (s *Service) SendOldTicketsDigest(ctx context.Context) bool {
	adminEmail, ok := s.adminRecipient(ctx, setting.KeyNotifyOldTickets)
	if !ok {
		return false
	}

	daysSetting, err := s.settings.Get(ctx, setting.KeyOldTicketsDays)
	if err != nil {
		s.logger.Errorw("failed to read old tickets threshold", "error", err)
		return false
	}
	days := daysSetting.IntValue(setting.DefaultOldTicketsDays)

	cutoff := biztime.DaysAgo(days)
	tickets, err := s.tickets.ListOlderThan(ctx, cutoff)
	if err != nil {
		s.logger.Errorw("failed to query old tickets", "error", err)
		return false
	}
	if len(tickets) == 0 {
		s.logger.Debugw("no old tickets found", "threshold_days", days)
		return false
	}

	subject := fmt.Sprintf("%d Ticket in Attesa da Più di %d Giorni", len(tickets), days)

	var rows strings.Builder
	for _, t := range tickets {
		fmt.Fprintf(&rows, `
			<tr>
				<td style="padding: 8px; border: 1px solid #ddd;">%s</td>
				<td style="padding: 8px; border: 1px solid #ddd;">%s</td>
				<td style="padding: 8px; border: 1px solid #ddd;">%s</td>
				<td style="padding: 8px; border: 1px solid #ddd;">%s</td>
				<td style="padding: 8px; border: 1px solid #ddd;"><a href="%s">Visualizza</a></td>
			</tr>
		`,
			t.Number(), esc(t.CustomerName()), t.Status().Label(),
			biztime.FormatDate(t.CreatedAt()), s.ticketURL(t.ID()))
	}

	body := fmt.Sprintf(`
		<h2>Ticket in Attesa da Più di %d Giorni</h2>
		<p>I seguenti ticket sono aperti da più di %d giorni:</p>
		<table style="border-collapse: collapse; width: 100%%;">
			<thead>
				<tr>
					<th style="padding: 8px; border: 1px solid #ddd; background-color: #f2f2f2;">Numero Ticket</th>
					<th style="padding: 8px; border: 1px solid #ddd; background-color: #f2f2f2;">Cliente</th>
					<th style="padding: 8px; border: 1px solid #ddd; background-color: #f2f2f2;">Stato</th>
					<th style="padding: 8px; border: 1px solid #ddd; background-color: #f2f2f2;">Data Creazione</th>
					<th style="padding: 8px; border: 1px solid #ddd; background-color: #f2f2f2;">Azione</th>
				</tr>
			</thead>
			<tbody>%s</tbody>
		</table>
	`, days, days, rows.String())

	return s.send(adminEmail, subject, body)
}
