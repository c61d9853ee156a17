package domain

// DefaultQuizID names the compiled-in question set.
const DefaultQuizID = "trivia"

// DefaultQuiz returns the compiled-in question set.
func DefaultQuiz() Quiz {
	return Quiz{
		ID: DefaultQuizID,
		Questions: []Question{
			{
				ID:     "capital-france",
				Prompt: "What is the capital of France?",
				Options: []Option{
					{Label: LabelA, Text: "London"},
					{Label: LabelB, Text: "Berlin"},
					{Label: LabelC, Text: "Paris"},
					{Label: LabelD, Text: "Madrid"},
				},
				Correct:   LabelC,
				TimeLimit: 15,
			},
			{
				ID:     "red-planet",
				Prompt: "Which planet is known as the Red Planet?",
				Options: []Option{
					{Label: LabelA, Text: "Venus"},
					{Label: LabelB, Text: "Mars"},
					{Label: LabelC, Text: "Jupiter"},
					{Label: LabelD, Text: "Saturn"},
				},
				Correct:   LabelB,
				TimeLimit: 15,
			},
			{
				ID:     "largest-ocean",
				Prompt: "What is the largest ocean on Earth?",
				Options: []Option{
					{Label: LabelA, Text: "Atlantic"},
					{Label: LabelB, Text: "Indian"},
					{Label: LabelC, Text: "Arctic"},
					{Label: LabelD, Text: "Pacific"},
				},
				Correct:   LabelD,
				TimeLimit: 15,
			},
			{
				ID:     "mona-lisa",
				Prompt: "Who painted the Mona Lisa?",
				Options: []Option{
					{Label: LabelA, Text: "Van Gogh"},
					{Label: LabelB, Text: "Picasso"},
					{Label: LabelC, Text: "Da Vinci"},
					{Label: LabelD, Text: "Rembrandt"},
				},
				Correct:   LabelC,
				TimeLimit: 15,
			},
			{
				ID:     "smallest-prime",
				Prompt: "What is the smallest prime number?",
				Options: []Option{
					{Label: LabelA, Text: "0"},
					{Label: LabelB, Text: "1"},
					{Label: LabelC, Text: "2"},
					{Label: LabelD, Text: "3"},
				},
				Correct:   LabelC,
				TimeLimit: 15,
			},
		},
	}
}
