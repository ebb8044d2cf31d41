package faq

import "strings"

// Entry is one scripted question/answer pair.
type Entry struct {
	Question string
	Answer   string
	Category string
}

// Greeting is the assistant's opening message.
const Greeting = "¡Hola! Soy tu asistente de CNSF. ¿En qué puedo ayudarte hoy?"

// Fallback is returned when no entry matches the query.
const Fallback = "Lo siento, no encontré una respuesta específica. ¿Podrías intentar con otras palabras o contactar a soporte@cnsf.gob.mx?"

// Suggestions are the quick categories offered to the user.
func Suggestions() []string {
	return []string{"Cursos", "Exámenes", "Certificados"}
}

func entries() []Entry {
	return []Entry{
		{
			Question: "¿Cómo accedo a los cursos?",
			Answer:   "Desde el panel principal, haz clic en \"Ver Cursos\" y selecciona el módulo que quieras estudiar.",
			Category: "Cursos",
		},
		{
			Question: "¿Cómo presento una evaluación?",
			Answer:   "Dentro de cada módulo encontrarás temas de tipo Evaluación; haz clic en \"Presentar Evaluación\" cuando termines la lectura.",
			Category: "Cursos",
		},
		{
			Question: "¿Cuánto dura el simulador de examen?",
			Answer:   "El simulador CNSF tiene un límite de 15 minutos y 10 preguntas. Necesitas 70% para aprobar.",
			Category: "Exámenes",
		},
		{
			Question: "¿Puedo repetir un examen?",
			Answer:   "Sí, puedes reiniciar el simulador cuantas veces quieras; cada intento se guarda en tu historial.",
			Category: "Exámenes",
		},
		{
			Question: "¿Dónde veo mis resultados?",
			Answer:   "En la sección de Reportes encontrarás tus resultados, promedio y avance por categoría.",
			Category: "Exámenes",
		},
		{
			Question: "¿Cómo obtengo mi certificado?",
			Answer:   "Al aprobar todas las evaluaciones de una cédula, tu constancia queda disponible en la sección de Reportes.",
			Category: "Certificados",
		},
		{
			Question: "¿Con quién me comunico si tengo problemas?",
			Answer:   "Escríbenos a soporte@cnsf.gob.mx o llama al 55 3000 8000 ext. 1234.",
			Category: "Soporte",
		},
	}
}

// Reply matches a user query against the FAQ table. Matching mirrors the
// assistant's original behavior: the query containing the scripted
// question or its category, or the answer containing the query.
func Reply(query string) string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Fallback
	}
	for _, e := range entries() {
		if strings.Contains(q, strings.ToLower(e.Question)) ||
			strings.Contains(q, strings.ToLower(e.Category)) ||
			strings.Contains(strings.ToLower(e.Answer), q) {
			return e.Answer
		}
	}
	return Fallback
}
