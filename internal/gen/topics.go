package gen

import "math/rand/v2"

// clozeTopics steer the multiple-choice cloze texts away from the handful
// of themes the models gravitate to when left unprompted.
var clozeTopics = []string{
	"a memorable journey by train",
	"learning to cook a family recipe",
	"a neighbourhood street market",
	"volunteering at an animal shelter",
	"moving to a new city",
	"a hobby that became a small business",
	"an unexpected friendship",
	"a week without a smartphone",
	"restoring an old bicycle",
	"a local sports club",
	"growing vegetables on a balcony",
	"a school exchange visit abroad",
	"an amateur theatre production",
	"a museum that surprised you",
	"living by the sea",
	"a famous explorer's expedition",
	"the history of a board game",
	"a family camping trip gone wrong",
	"working in a summer cafe",
	"a language-learning challenge",
	"a city marathon for beginners",
	"keeping bees in the suburbs",
	"an island community and its traditions",
	"a second-hand bookshop",
	"photographing wildlife at dawn",
	"a long-distance cycling route",
	"a grandmother's wartime letters",
	"an unusual musical instrument",
	"the revival of a village festival",
	"a night at an observatory",
}

// passageTopics feed the longer reading, gapped-text, matching, and
// word-formation passages.
var passageTopics = []string{
	"the psychology of habit formation",
	"urban beekeeping",
	"the science of sleep",
	"the rise of community gardens",
	"how memory works",
	"the history of chocolate",
	"deep-sea exploration",
	"the art of map making",
	"why birds migrate",
	"the future of public libraries",
	"training guide dogs",
	"the restoration of old buildings",
	"amateur astronomy",
	"the culture of tea around the world",
	"life in Antarctic research stations",
	"the design of playgrounds",
	"rediscovering traditional crafts",
	"the secret life of city foxes",
	"how glaciers shape landscapes",
	"the return of the night train",
	"running a family farm today",
	"the invention of the bicycle",
	"languages that are disappearing",
	"the appeal of cold-water swimming",
	"how orchestras rehearse",
	"the world of competitive baking",
	"citizen science projects",
	"the life of a lighthouse keeper",
	"coral reef conservation",
	"why we tell ghost stories",
	"the engineering of long bridges",
	"markets and street food culture",
	"learning a musical instrument as an adult",
	"the story of the postal service",
	"walking Britain's long-distance footpaths",
}

// openClozeTopics are the broad themes for the one-word gap texts.
var openClozeTopics = []string{
	"travel and holidays",
	"education and learning",
	"technology and the internet",
	"health and fitness",
	"the environment and climate",
	"arts and music",
	"sport and competition",
	"work and careers",
	"family and relationships",
	"food and cooking",
	"science and discovery",
	"history and culture",
	"shopping and consumerism",
	"nature and wildlife",
	"entertainment and media",
	"transport and cities",
	"hobbies and free time",
	"news and current events",
}

func pickTopic(topics []string) string {
	return topics[rand.IntN(len(topics))]
}
