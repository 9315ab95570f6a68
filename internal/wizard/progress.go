package wizard

// Step is one section of the wizard form with its completion state.
type Step struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

type Progress struct {
	Steps          []Step `json:"steps"`
	CompletedCount int    `json:"completed_count"`
	TotalSteps     int    `json:"total_steps"`
}

// ComputeProgress projects the live form into per-step completion. The
// requirements step is an optional section and always counts as complete.
func ComputeProgress(form FormData) Progress {
	steps := []Step{
		{
			ID:   "basic",
			Name: "Basic Info",
			Completed: form.EventName != "" && form.ClientName != "" &&
				form.ClientEmail != "" && form.ClientPhone != "",
		},
		{
			ID:   "details",
			Name: "Event Details",
			Completed: form.DateTime != "" && form.Duration != "" &&
				form.State != "" && form.City != "" && form.Attendees > 0,
		},
		{
			ID:        "budget",
			Name:      "Budget & Style",
			Completed: form.Budget.Min > 0 && form.Budget.Max > 0,
		},
		{
			ID:        "requirements",
			Name:      "Requirements",
			Completed: true,
		},
	}

	completed := 0
	for _, step := range steps {
		if step.Completed {
			completed++
		}
	}

	return Progress{
		Steps:          steps,
		CompletedCount: completed,
		TotalSteps:     len(steps),
	}
}
