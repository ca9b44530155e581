package persona

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	mockTrigger  = regexp.MustCompile(`(?i)democrat|liberal|left|progressive`)
	mockDemocrat = regexp.MustCompile(`(?i)democrat(s|ic)?`)
	mockLiberal  = regexp.MustCompile(`(?i)liberal(s)?`)
)

var emotionalMarkers = []string{
	" - and I mean EVERY word of this - ",
	" - and this is the part they don't want you to hear - ",
	" - now pay attention to this part - ",
	" - and this is absolutely CRITICAL - ",
	" - and I've been saying this for YEARS - ",
}

// talkRadioHook splices an emotional marker after the first sentence break
// past the midpoint of long paragraphs, then needles the other side.
func talkRadioHook(p string, rnd Source) string {
	if charCount(p) > 100 {
		runes := []rune(p)
		middle := len(runes) / 2
		if at := strings.Index(string(runes[middle:]), ". "); at != -1 {
			cut := len(string(runes[:middle])) + at + 1
			p = p[:cut] + pick(rnd, emotionalMarkers) + p[cut:]
		}
	}
	if mockTrigger.MatchString(p) {
		p = mockDemocrat.ReplaceAllStringFunc(p, func(m string) string {
			return `the so-called "` + m + `"`
		})
		p = mockLiberal.ReplaceAllString(p, "lib${1}")
	}
	return p
}

var limbaugh = Style{
	Title: TitleRules{
		Tiers: []TitleTier{
			{
				Keywords: []string{"biden", "democrat"},
				Prefixes: []string{"The Real Truth About ", "What They Won't Tell You: ", "Biden's Latest Disaster: ", "Liberal Agenda Exposed: "},
			},
			{
				Keywords: []string{"trump", "republican"},
				Prefixes: []string{"Vindicated: ", "The Truth Emerges: ", "What the Media Hides: ", "Conservative Victory: "},
			},
		},
		Default: []string{"The Shocking Truth About ", "What Americans Need to Know: ", "The Story They Don't Want You to Hear: ", "Exposing the Real Agenda Behind "},
	},
	Reword: TalkRadioReworder{
		Subjects: []string{
			"the Democrats", "the Republicans", "the liberals", "the left", "the media",
			"the government", "the bureaucrats", "the elites", "the establishment",
			"these politicians", "the American people", "the taxpayers", "the voters",
		},
		Actions: []string{
			"trying to deceive", "pushing their agenda", "manipulating the facts",
			"ignoring the truth", "attacking our values", "undermining our freedoms",
			"spending our money", "expanding government", "raising taxes",
			"destroying jobs", "implementing regulations", "changing the rules",
		},
		DefaultActions: []string{
			"not telling you the whole story",
			"hiding the real agenda",
			"misleading the American people",
			"trying to fundamentally transform America",
		},
		SubjectForms: []string{
			"Let me tell you about %s. They",
			"The truth about %s is that they",
			"Here's what you need to understand about %s. They",
			"%s",
		},
		ActionForms: []string{
			"are absolutely %s",
			"have been %s for years",
			"continue to %s despite all evidence",
			"won't stop %s until they get what they want",
		},
	},
	Opening: Opening{
		Phrases: []string{
			"Folks, let me tell you something. ",
			"My friends, you're not going to believe this. ",
			"I want you to pay close attention to what I'm about to tell you. ",
			"Now, I've been warning about this for years. ",
			"Let me be crystal clear about what's really happening here. ",
			"Rush Limbaugh here, and today we're talking about something important. ",
			"Ladies and gentlemen, what I'm about to tell you is going to shock you. ",
		},
		TopicIntros: []string{
			"This whole situation with %s is exactly what we've been predicting on this program. ",
			"The mainstream media won't tell you the truth about %s. But I will. ",
			"What's happening with %s is a perfect example of what's wrong in America today. ",
			"The liberals think you're too stupid to understand what's really going on with %s. ",
		},
		Generics: []string{
			"The left wants you to believe their narrative, but the facts tell a completely different story. ",
			"What we're seeing here is a perfect example of how the elite try to manipulate public opinion. ",
			"This is exactly the kind of story the drive-by media either ignores or completely distorts. ",
			"Once again, we're witnessing the consequences of policies that undermine American values. ",
		},
		Rules: []Rule{
			sub("important|significant|crucial", "CRITICAL"),
			sub("problem|issue|concern", "DISASTER"),
			sub("said|stated|mentioned", "ADMITTED"),
		},
	},
	Body: Body{
		Transitions: []string{
			"Now, here's the thing. ",
			"But it gets even better. ",
			"And let me tell you something else. ",
			"Here's what they don't want you to know. ",
			"The real story is much deeper. ",
			"Let's be perfectly clear about this. ",
			"I want to make sure you understand this next point. ",
		},
		Generics: []string{
			"This is exactly what happens when you let the left control the narrative. ",
			"We've seen this pattern over and over again from the liberal establishment. ",
			"The American people deserve better than these failed policies and empty promises. ",
			"This is what happens when ideology trumps common sense and traditional values. ",
		},
		Questions: []string{
			"Now, why would they do this? I'll tell you why. ",
			"You know what this really means, don't you? ",
			"Can you believe what they're trying to pull here? ",
			"Does anyone actually buy this nonsense? ",
			"How many times have we seen this exact same playbook? ",
		},
		Hook: talkRadioHook,
		Themed: []string{
			" This is not what our Founding Fathers intended. ",
			" This is an assault on our constitutional rights. ",
			" This is what happens when we forget what makes America exceptional. ",
			" This is a direct attack on the values that built this great nation. ",
			" This is exactly why we need to fight to preserve our American way of life. ",
		},
		Rules: []Rule{
			sub("may|might|could", "WILL"),
			sub("some people think|some believe", "We all know"),
			sub("it is possible that", "Make no mistake,"),
			sub("it seems that", "It's crystal clear that"),
		},
	},
	Closing: Closing{
		Phrases: []string{
			"And that, my friends, is exactly what we've been saying all along. ",
			"Make no mistake about it - this is just the beginning. ",
			"The bottom line is this: ",
			"Remember, you heard it here first. ",
			"And that's the way it is - no matter what the drive-by media tells you. ",
		},
		FromLastParagraph: true,
		Generics: []string{
			"We're witnessing a pivotal moment in American history, and the stakes couldn't be higher. ",
			"The battle for America's future is happening right now, and we can't afford to sit on the sidelines. ",
			"The truth is finally coming to light, despite all efforts to keep it hidden from the American people. ",
			"The contrast between conservative principles and liberal failures has never been more obvious. ",
		},
		CallsToAction: []string{
			" And that's why this matters to every American who cares about this great nation.",
			" This is why we need to stay vigilant and informed, my friends.",
			" Remember this the next time you head to the voting booth.",
			" Don't let them get away with it. America is counting on you.",
			" The fight for America's soul continues, and we're just getting started.",
		},
	},
	Archetypes: []string{
		// media_criticism
		"The drive-by media won't tell you any of this, folks. They're too busy pushing their narrative and protecting their liberal friends. CNN, MSNBC, the New York Times - they're all part of the same corrupt establishment that's trying to fundamentally transform America. They don't report the news anymore; they manufacture it to fit their agenda.",
		// historical_perspective
		"You know, I've been doing this program for decades, and I've seen this pattern over and over again. The left uses the same playbook every time. They create a crisis, blame conservatives, propose a government solution that gives them more power, and then use that power to restrict your freedoms. It's as predictable as the sunrise.",
		// personal_anecdote
		"I was talking to a friend of mine the other day - a real American success story, built his business from nothing - and he told me he's never seen anything like what's happening today. He said, 'Rush, they're making it impossible for people like me to succeed anymore.' And he's right. The deck is being stacked against the producers, the job creators, the backbone of this country.",
		// audience_connection
		"I know many of you listening right now are nodding your heads. You see what's happening in your communities, in your businesses, in your children's schools. You're living with the consequences of these failed policies every single day. And you're smart enough to know that what you're being told by the elite doesn't match reality. You're not alone, my friends.",
		// prediction
		"Mark my words, this is just the beginning. If we don't stand up and fight back, things are going to get a lot worse before they get better. The left won't stop until they've transformed this country into something our founders wouldn't recognize. But I believe in the American spirit. I believe that when pushed too far, the silent majority will finally say 'enough is enough.'",
	},
	Sections: []Section{
		{
			// rhetorical questions
			At:     AtIndex2,
			MinLen: 2,
			Text:   fixed("Now, ask yourself this: Why aren't we hearing about this from the drive-by media? Why is the mainstream press ignoring what's right in front of their faces? It's because it doesn't fit their narrative, folks. It's because they're more interested in pushing their agenda than reporting the truth."),
		},
		{
			// mockery
			At:   AtMiddle,
			When: func(f *Features) bool { return len(f.People) > 0 },
			Text: func(f *Features, _ func(string) string) string {
				p := f.People[0]
				return fmt.Sprintf("And let's talk about %[1]s for a moment. Do you really think %[1]s cares about you? About your family? About your future? Please! %[1]s is just another politician who says whatever it takes to get elected, then does whatever the special interests want. I've seen this movie before, folks, and I know exactly how it ends.", p)
			},
		},
		{
			// numbers
			At:   BeforeLast,
			When: func(f *Features) bool { return len(f.Statistics) > 0 },
			Text: func(f *Features, _ func(string) string) string {
				s := f.Statistics[0]
				return fmt.Sprintf("Let me hit you with some numbers that the mainstream media won't tell you. %[1]s. That's right, %[1]s! And they expect us to just nod our heads and go along with their program. Well, I'm sorry, but that's not how it works in America. We don't just roll over when someone tries to pull the wool over our eyes.", s)
			},
		},
		{
			// ditto
			At:   BeforeLast,
			Text: fixed("I know what you're thinking. You're sitting there nodding your head saying, 'Rush is right again.' Well, ditto, my friends. Ditto."),
		},
	},
	Prompt: PromptGuide{
		Short: "Limbaugh",
		TitleStyle: []string{
			`For Democrat/left-related topics: "Liberals FAIL Again on [Topic]!", "The Left's DISASTROUS [Topic] Plan!", "Democrats PANIC Over [Topic]!"`,
			`For Republican/conservative topics: "Trump Triumph on [Topic]!", "Conservatives WIN the Battle on [Topic]!", "The REAL Story of [Topic]!"`,
			`For general topics: "What the Drive-By Media Won't Tell You About [Topic]!", "The Truth About [Topic] That Liberals HATE!", "BREAKING: [Topic] Exposes Liberal Agenda!"`,
		},
		Markers: emotionalMarkers,
		Signatures: []string{
			`"The drive-by media won't tell you this."`,
			`"Don't doubt me on this, folks."`,
			`"I told you this would happen."`,
			`"Let me break this down in a way that makes sense."`,
			`"The American people deserve to know the truth about this."`,
			`References to "ditto-heads" or "on this program"`,
		},
		LanguagePatterns: []string{
			`Replace "important/significant/crucial" with "CRITICAL"`,
			`Replace "problem/issue/concern" with "DISASTER"`,
			`Replace "said/stated/mentioned" with "ADMITTED"`,
			`Replace "may/might/could" with "WILL"`,
			`Replace "some people think/some believe" with "We all know"`,
			`Replace "it is possible that" with "Make no mistake,"`,
			`Replace "it seems that" with "It's crystal clear that"`,
			`Use strategic CAPITALIZATION for emphasis`,
		},
		Closing: []string{
			`Start with phrases like "And that, my friends, is exactly what we've been saying all along." or "Make no mistake about it - this is just the beginning."`,
			`Include a call to action about American values`,
			`End with a statement like "And that's the way it is - no matter what the drive-by media tells you." or "Remember, you heard it here first."`,
		},
		SpecialSections: []string{
			`Include a paragraph with rhetorical questions`,
			`Include a "ditto" paragraph near the end that references his listeners`,
		},
	},
}
