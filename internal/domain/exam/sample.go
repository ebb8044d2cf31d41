package exam

// Catalog returns the built-in exam templates.
func Catalog() []*Exam {
	return []*Exam{SampleExam()}
}

// Find returns the catalog exam with the given ID, or nil.
func Find(examID string) *Exam {
	for _, e := range Catalog() {
		if e.ID == examID {
			return e
		}
	}
	return nil
}

// SampleExam returns the built-in CNSF 2.1 simulator exam: 10 questions
// on the Ley de Instituciones de Seguros y Fianzas, 15 minutes, 70% to pass.
func SampleExam() *Exam {
	e, err := New(
		"examen-cnsf-2.1",
		"Simulador Examen CNSF 2.1",
		"Examen de práctica sobre la Ley de Instituciones de Seguros y Fianzas",
		"Regulación",
		sampleQuestions(),
		15,
		70,
	)
	if err != nil {
		panic("built-in sample exam invalid: " + err.Error())
	}
	return e
}

func sampleQuestions() []Question {
	return []Question{
		{
			ID:   "1",
			Text: "Según la LISF, ¿cuál es el objeto de la regulación de las instituciones de seguros?",
			Options: []string{
				"Proteger los intereses del público asegurado",
				"Maximizar las ganancias de las aseguradoras",
				"Facilitar la venta de seguros",
				"Reducir la competencia entre aseguradoras",
			},
			CorrectOption: 0,
			Category:      "Regulación",
			Difficulty:    DifficultyEasy,
		},
		{
			ID:   "2",
			Text: "¿Qué tipo de seguros son los que cubren riesgos provenientes de fuerzas naturales?",
			Options: []string{
				"Seguros de vida",
				"Seguros de daños",
				"Seguros de gastos médicos",
				"Seguros de automóviles",
			},
			CorrectOption: 1,
			Category:      "Seguros de Daños",
			Difficulty:    DifficultyEasy,
		},
		{
			ID:   "3",
			Text: "La Comisión Nacional de Seguros y Fianzas (CNSF) depende de:",
			Options: []string{
				"La Secretaría de Hacienda y Crédito Público",
				"El Banco de México",
				"La Secretaría de Economía",
				"El Congreso de la Unión",
			},
			CorrectOption: 0,
			Category:      "Regulación",
			Difficulty:    DifficultyMedium,
		},
		{
			ID:   "4",
			Text: "¿Cuál es el plazo máximo para que una aseguradora deba pronunciarse sobre el pago de un siniestro?",
			Options: []string{
				"30 días naturales",
				"60 días naturales",
				"90 días naturales",
				"180 días naturales",
			},
			CorrectOption: 2,
			Category:      "Siniestros",
			Difficulty:    DifficultyMedium,
		},
		{
			ID:   "5",
			Text: "El contrato de seguros debe contener de forma obligatoria:",
			Options: []string{
				"Solo el nombre del agente que vende el seguro",
				"La cantidad de asegurados en la póliza",
				"Los derechos y obligaciones de las partes",
				"El historial de reclamaciones del asegurado",
			},
			CorrectOption: 2,
			Category:      "Contratos",
			Difficulty:    DifficultyMedium,
		},
		{
			ID:   "6",
			Text: "¿Qué es la prima en un contrato de seguros?",
			Options: []string{
				"El monto que paga la aseguradora al asegurado",
				"El precio del seguro que paga el contratante",
				"El deducible del seguro",
				"La comisión del agente",
			},
			CorrectOption: 1,
			Category:      "Conceptos Básicos",
			Difficulty:    DifficultyEasy,
		},
		{
			ID:   "7",
			Text: "La reserva técnica de una aseguradora se refiere a:",
			Options: []string{
				"Las oficinas físicas de la empresa",
				"Los recursos destinados a cumplir compromisos con asegurados",
				"El capital social de la compañía",
				"Los activos fijos de la institución",
			},
			CorrectOption: 1,
			Category:      "Finanzas",
			Difficulty:    DifficultyHard,
		},
		{
			ID:   "8",
			Text: "¿Qué documento acredita la existencia de un contrato de seguros?",
			Options: []string{
				"La cotización",
				"La póliza",
				"El recibo de pago",
				"La solicitud de seguro",
			},
			CorrectOption: 1,
			Category:      "Contratos",
			Difficulty:    DifficultyEasy,
		},
		{
			ID:   "9",
			Text: "El aseguramiento de riesgos implica que:",
			Options: []string{
				"El riesgo desaparece completamente",
				"El riesgo se transfiere a la aseguradora",
				"El riesgo se comparte con el gobierno",
				"El riesgo se reduce a cero",
			},
			CorrectOption: 1,
			Category:      "Conceptos Básicos",
			Difficulty:    DifficultyEasy,
		},
		{
			ID:   "10",
			Text: "La inspección del riesgo por parte de la aseguradora se realiza:",
			Options: []string{
				"Después de ocurrido un siniestro",
				"Antes de emitir la póliza",
				"Solo cuando hay un incremento en la prima",
				"Una vez al año obligatoriamente",
			},
			CorrectOption: 1,
			Category:      "Underwriting",
			Difficulty:    DifficultyMedium,
		},
	}
}
