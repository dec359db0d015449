package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/fcetrainer/internal/exam"
)

// Seed bulk-imports the built-in manual tasks. For each exercise type it is
// a no-op when the table already has rows, so it is safe to call on every
// startup.
func (s *Store) Seed(ctx context.Context) error {
	tasks := s.TaskRepo()

	seed := func(ex exam.Exercise, payloads []any) error {
		n, err := tasks.Count(ctx, ex)
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		for _, p := range payloads {
			raw, err := json.Marshal(p)
			if err != nil {
				return fmt.Errorf("marshal %s seed: %w", ex, err)
			}
			t := &exam.Task{Exercise: ex, Payload: raw, Source: exam.SourceManual}
			if tp, ok := p.(exam.TransformationPayload); ok {
				t.GrammarTopic = tp.GrammarTopic
			}
			if _, err := tasks.Insert(ctx, t); err != nil {
				return err
			}
		}
		return nil
	}

	for _, group := range []struct {
		ex       exam.Exercise
		payloads []any
	}{
		{exam.MultipleChoiceCloze, seedCloze},
		{exam.OpenCloze, seedOpenCloze},
		{exam.WordFormation, seedWordFormation},
		{exam.Transformation, seedTransformations},
		{exam.ReadingMC, seedReading},
		{exam.GappedText, seedGappedText},
		{exam.MultipleMatching, seedMatching},
	} {
		if err := seed(group.ex, group.payloads); err != nil {
			return err
		}
	}
	return nil
}

var seedCloze = []any{
	exam.ClozePayload{
		Text: "The success of the new shopping centre has surprised many people. When it first opened, there were fears that it would (1)_____ empty. However, the (2)_____ of the centre has been enormous. Shoppers are (3)_____ by the variety of goods on offer and the number of (4)_____ has increased every month. The centre has become a (5)_____ part of the town and has (6)_____ many new jobs. Local people say it has (7)_____ their lives and they cannot (8)_____ how they managed without it.",
		Gaps: []exam.ClozeGap{
			{Options: []string{"stay", "remain", "keep", "hold"}, Correct: 1},
			{Options: []string{"popularity", "fame", "reputation", "approval"}, Correct: 0},
			{Options: []string{"impressed", "affected", "interested", "attracted"}, Correct: 0},
			{Options: []string{"visitors", "attendees", "customers", "guests"}, Correct: 0},
			{Options: []string{"necessary", "essential", "important", "vital"}, Correct: 3},
			{Options: []string{"created", "made", "given", "put"}, Correct: 0},
			{Options: []string{"changed", "improved", "developed", "grown"}, Correct: 1},
			{Options: []string{"imagine", "suppose", "wonder", "consider"}, Correct: 0},
		},
	},
	exam.ClozePayload{
		Text: "My brother has always been (1)_____ on music. He started playing the piano when he was six and it soon became (2)_____ that he had a special talent. By the time he was a teenager, he had already given several (3)_____ and had won a number of competitions. He decided to (4)_____ a career in music and went to study at a famous (5)_____ in the capital. He now works as a concert pianist and his (6)_____ has taken him all over the world. He says he cannot (7)_____ a life without music and practises for several hours every (8)_____.",
		Gaps: []exam.ClozeGap{
			{Options: []string{"keen", "eager", "fond", "interested"}, Correct: 0},
			{Options: []string{"sure", "clear", "obvious", "evident"}, Correct: 1},
			{Options: []string{"performances", "shows", "plays", "acts"}, Correct: 0},
			{Options: []string{"follow", "pursue", "chase", "run"}, Correct: 1},
			{Options: []string{"college", "academy", "school", "institute"}, Correct: 1},
			{Options: []string{"job", "work", "profession", "career"}, Correct: 3},
			{Options: []string{"think", "see", "imagine", "believe"}, Correct: 2},
			{Options: []string{"day", "time", "moment", "hour"}, Correct: 0},
		},
	},
}

var seedOpenCloze = []any{
	exam.OpenClozePayload{
		Text:    "I have always been interested (1)_____ how machines work. When I was a child, I used (2)_____ take my toys apart to see what was inside. My parents were not very pleased (3)_____ me when I could not put them back together again. I studied engineering at university and now I work (4)_____ a large company that designs car engines. I have been there (5)_____ five years and I still find my job fascinating. (6)_____ I could change one thing, it would be the amount of paperwork I have to do. Last year I was asked (7)_____ give a presentation at a conference, which was a great experience. I am sure that my interest in machines will last (8)_____ the rest of my life.",
		Answers: []string{"in", "to", "with", "for", "for", "If", "to", "for"},
	},
	exam.OpenClozePayload{
		Text:    "The weather in this part of the country can change very quickly. (1)_____ the morning it may be sunny, but by lunchtime it could be raining heavily. Many people (2)_____ live here always carry an umbrella, (3)_____ they know they might need it at any moment. The best time to visit is probably (4)_____ spring or early summer, when the days are longer and the temperature is pleasant. (5)_____ you are planning to go walking in the hills, make sure you take warm clothing. It can get cold (6)_____ high up, even when it is warm in the valleys. The local tourist office will give you (7)_____ information about the best routes to take. I have been living here (8)_____ ten years and I still find new places to explore.",
		Answers: []string{"In", "who", "as", "in", "If", "when", "you", "for"},
	},
}

var seedWordFormation = []any{
	exam.WordFormationPayload{
		Text:    "The (1)_____ of the new shopping centre has been delayed. COMPLETE She looked at him (2)_____ when he told the joke. SUSPECT It was (3)_____ of you to leave the door unlocked. RESPONSIBLE We need to make a (4)_____ soon. DECIDE The (5)_____ of the product has improved. RELIABLE She accepted the criticism (6)_____. GRACIOUS We need to reduce our (7)_____ on fossil fuels. DEPEND The (8)_____ of the building took three years. CONSTRUCT",
		Stems:   []string{"COMPLETE", "SUSPECT", "RESPONSIBLE", "DECIDE", "RELIABLE", "GRACIOUS", "DEPEND", "CONSTRUCT"},
		Answers: []string{"completion", "suspiciously", "irresponsible", "decision", "reliability", "graciously", "dependence", "construction"},
	},
	exam.WordFormationPayload{
		Text:    "He's a very (1)_____ person — he never gets angry. PATIENCE There was a (2)_____ change in the weather. SUDDEN I find it (3)_____ to believe he said that. POSSIBLE She spoke so (4)_____ that I couldn't hear her. QUIET We had an (5)_____ discussion about the project. PRODUCE His (6)_____ to help was very kind. WILLING The situation is becoming increasingly (7)_____. DANGER The (8)_____ of the product has improved. RELIABLE",
		Stems:   []string{"PATIENCE", "SUDDEN", "POSSIBLE", "QUIET", "PRODUCE", "WILLING", "DANGER", "RELIABLE"},
		Answers: []string{"patient", "sudden", "impossible", "quietly", "productive", "willingness", "dangerous", "reliability"},
	},
}

var seedTransformations = []any{
	exam.TransformationPayload{Sentence1: "I've never been to Paris before.", Keyword: "FIRST", Sentence2: "It's the _____ I've been to Paris.", Answer: "first time"},
	exam.TransformationPayload{Sentence1: "We couldn't go out because of the rain.", Keyword: "PREVENTED", Sentence2: "The rain _____ going out.", Answer: "prevented us from"},
	exam.TransformationPayload{Sentence1: "I don't think we need to leave yet.", Keyword: "NECESSARY", Sentence2: "I don't think _____ leave yet.", Answer: "it's necessary to"},
	exam.TransformationPayload{Sentence1: "She started learning English five years ago.", Keyword: "BEEN", Sentence2: "She _____ English for five years.", Answer: "has been learning", GrammarTopic: "present perfect continuous"},
	exam.TransformationPayload{Sentence1: "Perhaps John forgot about the meeting.", Keyword: "MIGHT", Sentence2: "John _____ about the meeting.", Answer: "might have forgotten", GrammarTopic: "modal verbs"},
	exam.TransformationPayload{Sentence1: "It was wrong of you to shout at her.", Keyword: "SHOULD", Sentence2: "You _____ at her.", Answer: "shouldn't have shouted", GrammarTopic: "modal verbs"},
	exam.TransformationPayload{Sentence1: "The film wasn't as good as I expected.", Keyword: "LIVE", Sentence2: "The film _____ my expectations.", Answer: "didn't live up to", GrammarTopic: "phrasal verbs"},
	exam.TransformationPayload{Sentence1: "I last saw him in 2019.", Keyword: "SINCE", Sentence2: "I _____ 2019.", Answer: "haven't seen him since", GrammarTopic: "present perfect"},
	exam.TransformationPayload{Sentence1: "They say the weather will be fine tomorrow.", Keyword: "SUPPOSED", Sentence2: "The weather _____ fine tomorrow.", Answer: "is supposed to be"},
	exam.TransformationPayload{Sentence1: "I'd prefer you not to tell anyone.", Keyword: "RATHER", Sentence2: "I'd _____ anyone.", Answer: "rather you didn't tell", GrammarTopic: "wish/if only"},
	exam.TransformationPayload{Sentence1: "We had to cancel the match because of the storm.", Keyword: "CALLED", Sentence2: "The match _____ because of the storm.", Answer: "had to be called off", GrammarTopic: "phrasal verbs"},
	exam.TransformationPayload{Sentence1: "He is too young to drive.", Keyword: "OLD", Sentence2: "He _____ to drive.", Answer: "isn't old enough", GrammarTopic: "comparatives"},
	exam.TransformationPayload{Sentence1: "I'm sorry I didn't phone you earlier.", Keyword: "WISH", Sentence2: "I _____ you earlier.", Answer: "wish I had phoned", GrammarTopic: "wish/if only"},
	exam.TransformationPayload{Sentence1: "Nobody in the class is taller than Maria.", Keyword: "TALLEST", Sentence2: "Maria _____ in the class.", Answer: "is the tallest", GrammarTopic: "comparatives"},
	exam.TransformationPayload{Sentence1: "They are building a new hospital in the town.", Keyword: "BUILT", Sentence2: "A new hospital _____ in the town.", Answer: "is being built", GrammarTopic: "passive voice"},
}

var seedReading = []any{
	exam.ReadingPayload{
		Title: "The benefits of learning a musical instrument",
		Text: "<p>Learning to play a musical instrument is one of the most rewarding activities a person can take up. Whether you choose the piano, guitar, or violin, the benefits extend far beyond simply being able to play music.</p>\n" +
			"<p>Research has shown that learning an instrument improves memory and concentration. When you read music and coordinate your hands, you are exercising your brain in ways that few other activities can match. Many students who learn music also perform better in subjects like maths and languages.</p>\n" +
			"<p>Playing an instrument can also reduce stress. Focusing on the music allows you to forget your worries for a while. Moreover, joining a band or orchestra helps you meet people and build lasting friendships. Even practising alone can give you a sense of achievement when you finally master a difficult piece.</p>\n" +
			"<p>It is never too late to start. While children often learn quickly, adults can make excellent progress too, as long as they practise regularly. The key is to choose an instrument you enjoy and to set aside a little time each day.</p>",
		Questions: []exam.ReadingQuestion{
			{Q: "What is the main idea of the first paragraph?", Options: []string{"You should choose the piano.", "Learning an instrument has wide benefits.", "Playing music is easy.", "Instruments are expensive."}, Correct: 1},
			{Q: "According to the text, learning an instrument helps with:", Options: []string{"only playing music", "memory and concentration", "sports performance", "cooking skills"}, Correct: 1},
			{Q: "The text says that playing music can help you:", Options: []string{"earn more money", "forget your worries", "travel more", "work longer hours"}, Correct: 1},
			{Q: "What does the text say about adults learning an instrument?", Options: []string{"They cannot learn as well as children.", "They need to practise regularly.", "They should only learn the piano.", "They find it too stressful."}, Correct: 1},
			{Q: "What does 'set aside' mean in this context?", Options: []string{"save money", "find or reserve time", "put something down", "forget something"}, Correct: 1},
			{Q: "The author's purpose is to:", Options: []string{"advertise music lessons", "encourage people to try learning an instrument", "compare different instruments", "explain how to join a band."}, Correct: 1},
		},
	},
	exam.ReadingPayload{
		Title: "Why we forget names",
		Text: "<p>Forgetting someone's name moments after being introduced is embarrassing, but it is extremely common. Scientists have studied why names are so difficult to remember compared to other information.</p>\n" +
			"<p>One reason is that names are arbitrary. If you meet someone called Mr Baker, his name does not tell you what he looks like or what he does. Unlike words that describe something, names are just labels with no built-in meaning. This makes them harder for the brain to store and retrieve.</p>\n" +
			"<p>Another factor is that we often do not pay full attention when we are introduced. We might be thinking about what we are going to say next, or worrying about making a good impression. When we are not fully focused, the name does not get properly encoded in our memory.</p>\n" +
			"<p>There are simple tricks that can help. Repeating the name when you hear it, and using it once or twice in the first few minutes of conversation, can make a big difference. Linking the name to a visual image or a famous person with the same name can also improve recall.</p>",
		Questions: []exam.ReadingQuestion{
			{Q: "According to the text, why are names hard to remember?", Options: []string{"They are too long.", "They often have no meaning.", "People say them too quietly.", "We hear too many at once."}, Correct: 1},
			{Q: "The text suggests we sometimes forget names because:", Options: []string{"we are not paying full attention", "the room is too noisy", "we have bad eyesight", "names are too short"}, Correct: 0},
			{Q: "Which tip does the text give for remembering names?", Options: []string{"Write them down immediately.", "Repeat the name when you hear it.", "Only meet people one at a time.", "Avoid using the person's name."}, Correct: 1},
			{Q: "What does 'arbitrary' mean here?", Options: []string{"difficult", "random or not descriptive", "important", "long"}, Correct: 1},
			{Q: "The second paragraph explains:", Options: []string{"how to remember names", "why names lack meaning that helps memory", "who Mr Baker is", "what the brain stores."}, Correct: 1},
			{Q: "The author's tone is:", Options: []string{"critical", "reassuring and practical", "humorous", "scientific only."}, Correct: 1},
		},
	},
}

var seedGappedText = []any{
	exam.GappedTextPayload{
		Paragraphs: []string{
			"Tourism has grown enormously in the last fifty years. For many countries it is now the most important source of income.",
			"GAP1",
			"They need hotels, restaurants, and transport. They want to visit famous sights and buy souvenirs.",
			"GAP2",
			"This can lead to overcrowding and damage to historic sites. In some places, local people find it difficult to afford to live because prices have risen so much.",
			"GAP3",
			"Governments and local councils are trying to find a balance. They want to attract visitors but also protect the environment and the interests of residents.",
			"GAP4",
			"Some places have introduced limits on the number of visitors. Others charge higher fees at peak times.",
			"GAP5",
			"Tourists themselves can help by choosing responsible travel options and respecting local customs.",
			"GAP6",
			"If we manage tourism carefully, everyone can benefit from it.",
		},
		Sentences: []string{
			"However, large numbers of tourists can also cause problems.",
			"When people go on holiday, they spend money and create jobs.",
			"There are no easy answers to these challenges.",
			"As a result, various solutions have been tried.",
			"In addition, they expect a certain level of comfort and service.",
			"This has created both opportunities and challenges for popular destinations.",
			"It is clear that tourism will continue to play a major role in the world economy.",
		},
		Answers: []int{1, 4, 0, 2, 3, 5},
	},
}

var seedMatching = []any{
	exam.MatchingPayload{
		Sections: []exam.MatchingSection{
			{ID: "A", Title: "City Museum", Text: "The museum is open every day except Monday. Entry is free for under-18s. There are guided tours at 11am and 2pm. The café is open from 10am to 4pm. Wheelchair access is available at the side entrance."},
			{ID: "B", Title: "River Boat Tours", Text: "Tours run from April to October, weather permitting. Departures are at 10am, 12pm, and 3pm. Booking in advance is recommended at weekends. Children under 5 travel free. The tour lasts approximately one hour."},
			{ID: "C", Title: "Central Park", Text: "The park is open from dawn until dusk. Dogs must be kept on a lead. There is a children's play area near the main gate. No cycling is allowed on the grass. The bandstand hosts free concerts on Sunday afternoons in summer."},
			{ID: "D", Title: "Art Gallery", Text: "The gallery is closed on Tuesdays. Students get half-price entry on presentation of a valid ID. Photography is not allowed in the main halls. The shop sells postcards and books. Last entry is 30 minutes before closing."},
		},
		Questions: []exam.MatchingQuestion{
			{Text: "You can get a discount if you are still in education.", Correct: "D"},
			{Text: "You need to book ahead at busy times.", Correct: "B"},
			{Text: "You can listen to live music here in the summer.", Correct: "C"},
			{Text: "Young people do not have to pay to enter.", Correct: "A"},
			{Text: "You cannot take photos in certain areas.", Correct: "D"},
			{Text: "This place is not open every day of the week.", Correct: "A"},
			{Text: "Your pet can come with you if it is controlled.", Correct: "C"},
			{Text: "The trip takes about sixty minutes.", Correct: "B"},
			{Text: "You can enter through a special entrance if you use a wheelchair.", Correct: "A"},
			{Text: "You have to leave before the official closing time.", Correct: "D"},
		},
	},
}
