package spanish

import (
	"github.com/LingoLeap/LingoLeap-backend/internal/lessons"
	model "github.com/LingoLeap/LingoLeap-backend/internal/models"
)

func init() {
	lessons.Register("spanish", lessonList)
}

var lessonList = []model.Lesson{
	{
		ID:    1,
		Level: "beginner",
		Title: "Greetings and Introductions",
		Content: "In Spanish, greetings change with the time of day. " +
			"\"Buenos días\" works until noon, \"buenas tardes\" until sunset, " +
			"and \"buenas noches\" after dark. To introduce yourself, say " +
			"\"Me llamo...\" (literally: I call myself).",
		Questions: []model.Question{
			{ID: 1, Prompt: "How do you say \"good morning\" in Spanish?", Answer: "buenos días",
				Options: []string{"buenos días", "buenas noches", "hasta luego", "por favor"}},
			{ID: 2, Prompt: "What does \"me llamo\" literally mean?", Answer: "I call myself"},
			{ID: 3, Prompt: "Which greeting fits after dark?", Answer: "buenas noches",
				Options: []string{"buenos días", "buenas tardes", "buenas noches"}},
		},
	},
	{
		ID:    2,
		Level: "beginner",
		Title: "Numbers 1-10",
		Content: "Uno, dos, tres, cuatro, cinco, seis, siete, ocho, nueve, diez. " +
			"Numbers are the backbone of prices, phone numbers and telling time.",
		Questions: []model.Question{
			{ID: 1, Prompt: "How do you say \"five\" in Spanish?", Answer: "cinco",
				Options: []string{"cuatro", "cinco", "seis", "siete"}},
			{ID: 2, Prompt: "What number is \"ocho\"?", Answer: "8"},
			{ID: 3, Prompt: "How do you say \"ten\" in Spanish?", Answer: "diez"},
		},
	},
	{
		ID:    3,
		Level: "intermediate",
		Title: "Ser vs Estar",
		Content: "Spanish has two verbs for \"to be\". \"Ser\" describes essence and " +
			"identity (soy profesor), \"estar\" describes state and location " +
			"(estoy cansado, estoy en casa). Swapping them changes meaning: " +
			"\"ser aburrido\" is to be boring, \"estar aburrido\" is to be bored.",
		Questions: []model.Question{
			{ID: 1, Prompt: "Which verb describes location?", Answer: "estar",
				Options: []string{"ser", "estar"}},
			{ID: 2, Prompt: "Complete: \"yo ___ profesor\" (identity)", Answer: "soy"},
			{ID: 3, Prompt: "What does \"estar aburrido\" mean?", Answer: "to be bored"},
			{ID: 4, Prompt: "Complete: \"ellos ___ en Madrid\" (location)", Answer: "están"},
		},
	},
}
