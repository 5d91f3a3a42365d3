package workflow

import "fmt"

// User-facing texts the dialogue agent speaks back. The agent itself does
// the conversational phrasing; these are the factual payloads.

const allDriversBusyMessage = "Tu pago fue confirmado, pero todos nuestros conductores están ocupados en este momento. Te avisaremos apenas uno esté disponible."

const paymentFailedMessage = "No pudimos verificar tu pago. Por favor revisa la referencia e intenta de nuevo."

func noFareMessage(origin, destination string) string {
	return fmt.Sprintf("Lo sentimos, no tenemos una tarifa registrada para la ruta de %s a %s.", origin, destination)
}

func assignedMessage(name, phone string) string {
	return fmt.Sprintf("¡Perfecto! El piloto que se te asignó es: %s. Teléfono: %s. Esté atento, llegará en unos momentos.", name, phone)
}
