package french

import (
	"github.com/LingoLeap/LingoLeap-backend/internal/lessons"
	model "github.com/LingoLeap/LingoLeap-backend/internal/models"
)

func init() {
	lessons.Register("french", lessonList)
}

var lessonList = []model.Lesson{
	{
		ID:    101,
		Level: "beginner",
		Title: "Salutations",
		Content: "\"Bonjour\" covers the whole day, \"bonsoir\" takes over in the " +
			"evening. \"Salut\" is informal and works both for hello and goodbye. " +
			"To introduce yourself: \"Je m'appelle...\".",
		Questions: []model.Question{
			{ID: 1, Prompt: "Which greeting is informal?", Answer: "salut",
				Options: []string{"bonjour", "bonsoir", "salut"}},
			{ID: 2, Prompt: "How do you say \"my name is\" in French?", Answer: "je m'appelle"},
			{ID: 3, Prompt: "Which greeting fits the evening?", Answer: "bonsoir",
				Options: []string{"bonjour", "bonsoir"}},
		},
	},
	{
		ID:    102,
		Level: "beginner",
		Title: "Au café",
		Content: "Ordering is built on \"je voudrais\" (I would like), always " +
			"softened with \"s'il vous plaît\". \"Un café\" is an espresso ; ask " +
			"for \"un café crème\" if you want milk. The bill is \"l'addition\".",
		Questions: []model.Question{
			{ID: 1, Prompt: "How do you say \"I would like\"?", Answer: "je voudrais"},
			{ID: 2, Prompt: "What do you ask for to get the bill?", Answer: "l'addition",
				Options: []string{"l'addition", "la carte", "le menu"}},
			{ID: 3, Prompt: "What is \"un café\" by default?", Answer: "an espresso"},
		},
	},
	{
		ID:    103,
		Level: "intermediate",
		Title: "Passé composé",
		Content: "The passé composé combines avoir or être with a past participle. " +
			"Most verbs take avoir (j'ai mangé) ; verbs of movement and state " +
			"take être (je suis allé), and their participle agrees with the " +
			"subject (elle est allée).",
		Questions: []model.Question{
			{ID: 1, Prompt: "Which auxiliary does \"aller\" take?", Answer: "être",
				Options: []string{"avoir", "être"}},
			{ID: 2, Prompt: "Complete: \"j'___ mangé\"", Answer: "ai"},
			{ID: 3, Prompt: "Write the feminine participle in \"elle est ___\" (aller)", Answer: "allée"},
		},
	},
}
