package course

// Catalog returns the built-in course catalog: the Cédula A training
// course with its three CNSF modules. Completion flags are all false;
// the caller overlays per-user completions from the store.
func Catalog() []*Course {
	return []*Course{
		{
			ID:     "curso-1",
			Cedula: "A",
			Title:  "Cédula de Capacitación A - Seguros",
			Modules: []Module{
				{
					ID:    1,
					Title: "Aspectos Generales",
					Topics: []Topic{
						{ID: 1, Title: "Aspectos Jurídicos", Type: TopicReading},
						{ID: 2, Title: "Evaluación - Aspectos Jurídicos", Type: TopicEvaluation},
						{ID: 3, Title: "Aspectos Técnicos", Type: TopicReading},
						{ID: 4, Title: "Evaluación - Aspectos Técnicos", Type: TopicEvaluation},
					},
				},
				{
					ID:    2,
					Title: "Riesgos del Seguro de Personas",
					Topics: []Topic{
						{ID: 5, Title: "Bases Técnicas", Type: TopicReading},
						{ID: 6, Title: "Planes del Seguro de Vida", Type: TopicReading},
						{ID: 7, Title: "Accidentes Personales", Type: TopicReading},
						{ID: 8, Title: "Gastos Médicos Mayores", Type: TopicReading},
						{ID: 9, Title: "Seguro de Salud", Type: TopicReading},
						{ID: 10, Title: "Evaluación - Seguro de Personas", Type: TopicEvaluation},
					},
				},
				{
					ID:    3,
					Title: "Riesgos del Seguro de Daños",
					Topics: []Topic{
						{ID: 11, Title: "Seguro de Hogar", Type: TopicReading},
						{ID: 12, Title: "Seguro de Incendio", Type: TopicReading},
						{ID: 13, Title: "Seguro de Diversos", Type: TopicReading},
						{ID: 14, Title: "Responsabilidad Civil Familiar", Type: TopicReading},
						{ID: 15, Title: "Embarcaciones", Type: TopicReading},
						{ID: 16, Title: "Automóviles", Type: TopicReading},
						{ID: 17, Title: "Evaluación - Seguro de Daños", Type: TopicEvaluation},
					},
				},
			},
		},
	}
}

// Find returns the catalog course with the given ID, or nil.
func Find(courseID string) *Course {
	for _, c := range Catalog() {
		if c.ID == courseID {
			return c
		}
	}
	return nil
}
