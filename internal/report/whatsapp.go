package report

import (
	"fmt"
	"strings"

	"github.com/BruksfildServices01/pulcro-admin/internal/models"
)

// WhatsAppMessage gera o aviso de um serviço para o grupo da equipe, sem preço
func WhatsAppMessage(b models.DetailedBooking, client models.Client) string {
	var sb strings.Builder

	sb.WriteString("🧽 *PULCRO - Servicio Programado*\n\n")
	fmt.Fprintf(&sb, "📅 *Fecha:* %s a las %s\n", FormatDateAR(b.Date), b.Time)
	fmt.Fprintf(&sb, "🏢 *Cliente:* %s\n", b.ClientName)
	fmt.Fprintf(&sb, "📍 *Dirección:* %s\n", b.Address)
	fmt.Fprintf(&sb, "🔧 *Servicio:* %s\n", b.ServiceTypeName)
	fmt.Fprintf(&sb, "👥 *Equipo:* %s\n\n", b.TeamName)
	fmt.Fprintf(&sb, "📞 *Contacto:* %s\n", client.Contact)
	fmt.Fprintf(&sb, "📱 *Teléfono:* %s\n\n", client.Phone)
	fmt.Fprintf(&sb, "📝 *Observaciones:* %s", orDefault(b.Notes, "Sin observaciones especiales"))

	return sb.String()
}
