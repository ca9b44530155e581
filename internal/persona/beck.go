package persona

import "regexp"

var chalkboardRule = sub("connection|link|relationship", "dot to connect")

var beck = Style{
	Title: TitleRules{
		Tiers: []TitleTier{
			{
				Keywords: []string{"constitution", "freedom", "liberty"},
				Prefixes: []string{"Constitutional Crisis: ", "The Founders Warned Us: ", "Liberty Alert: ", "Freedom Under Attack: "},
			},
			{
				Keywords: []string{"history", "america", "founding"},
				Prefixes: []string{"History Teaches Us: ", "The Forgotten History of ", "What the Founders Would Say About ", "America's Crossroads: "},
			},
		},
		Default: []string{"The Coming Storm: ", "Connect the Dots: ", "Warning Signs: ", "The Truth Behind "},
	},
	Themes: regexp.MustCompile(`(?i)history|founding fathers|constitution|1776|1787|washington|jefferson|madison|hamilton|franklin|adams`),
	Reword: PhraseReworder{
		Rules: []Rule{
			sub("people are concerned about", "Americans are waking up to the danger of"),
			sub("some experts believe", "history teaches us"),
			sub("it is possible that", "mark my words:"),
			sub("there are indications that", "the warning signs show that"),
			sub("according to some sources", "if you connect the dots"),
		},
		Signatures: []string{
			"This is what the Founders warned us about. ",
			"The Constitution is clear on this issue. ",
			"History is repeating itself right before our eyes. ",
			"We need to return to first principles. ",
		},
	},
	Opening: Opening{
		Phrases: []string{
			"I want you to imagine something. ",
			"Let me take you back in history for a moment. ",
			"There's something happening in America that should concern all of us. ",
			"Our Founding Fathers warned us about this. ",
			"I've been studying this for years, and what I've found will shock you. ",
			"Connect the dots with me for a moment. ",
			"The Constitution provides a clear answer to this issue. ",
		},
		TopicIntros: []string{
			"What's happening with %s is exactly what the Founders feared. ",
			"The situation with %s has historical parallels that we need to understand. ",
			"%s represents a critical moment for our constitutional republic. ",
			"The truth about %s is being hidden from the American people. ",
		},
		Generics: []string{
			"We're at a crossroads in American history, and the path we choose will determine the future of our republic. ",
			"The Constitution provides a framework for liberty that's being systematically dismantled. ",
			"History shows us that when a nation abandons its founding principles, decline is inevitable. ",
			"The warning signs are all around us, but we're not connecting the dots. ",
		},
		Rules: []Rule{
			sub("important|significant|crucial", "critical"),
			sub("problem|issue|concern", "crisis"),
			sub("said|stated|mentioned", "warned"),
		},
	},
	Body: Body{
		Transitions: []string{
			"Now, let's connect the dots. ",
			"Here's what you need to understand. ",
			"The historical parallels are striking. ",
			"The Constitution is clear on this. ",
			"Let me show you something important. ",
			"This is where it gets interesting. ",
			"The Founders anticipated this very situation. ",
		},
		Generics: []string{
			"The principles of the Constitution are being eroded by those who swore to uphold them. ",
			"History shows us that liberty is fragile and must be vigilantly defended. ",
			"We're witnessing the systematic dismantling of the republic our Founders established. ",
			"The warning signs are all around us, but too many Americans are distracted. ",
		},
		Questions: []string{
			"What would the Founders say about this? ",
			"Have we forgotten the lessons of history? ",
			"Can you see the pattern emerging? ",
			"Where in the Constitution does it authorize this? ",
			"Are we connecting the dots yet? ",
		},
		Evidence: &Evidence{
			Items:    themes,
			Template: " History provides context: %s ",
			Reword:   true,
		},
		Themed: []string{
			" The Constitution specifically addresses this in Article I. ",
			" Our Founders created a system of checks and balances for exactly this reason. ",
			" The Bill of Rights exists to protect us from precisely this kind of overreach. ",
			" This is exactly the kind of tyranny that the Declaration of Independence condemned. ",
			" The Federalist Papers warned about this exact scenario. ",
		},
		Rules: []Rule{
			sub("may|might|could", "will"),
			sub("some people think|some believe", "history shows us"),
			sub("it is possible that", "mark my words:"),
			sub("it seems that", "it's clear that"),
		},
	},
	Closing: Closing{
		Phrases: []string{
			"Let me leave you with this final thought. ",
			"The choice before us is clear. ",
			"History is calling us to action. ",
			"The Founders gave us a roadmap. ",
			"We stand at a crossroads. ",
			"The warning signs couldn't be clearer. ",
			"The Constitution provides the answer. ",
		},
		CallsToAction: []string{
			" We must return to constitutional principles before it's too late. ",
			" The time to stand for liberty and the Constitution is now. ",
			" Each of us has a responsibility to preserve the republic for future generations. ",
			" We need to connect the dots and recognize the warning signs before us. ",
			" It's time to reclaim the vision of liberty that our Founders gave us. ",
		},
		Finals: []string{
			"The future of our republic hangs in the balance.",
			"May God continue to bless the United States of America.",
			"The Constitution is the solution.",
			"We must be the guardians of liberty in our time.",
			"History is watching what we do right now.",
		},
	},
	Archetypes: []string{
		// historical_parallel
		"History doesn't repeat itself, but it often rhymes. What we're seeing today has clear historical parallels. In the late 1700s, the Founders recognized the dangers of centralized power and created a constitutional republic with checks and balances. They studied the rise and fall of past republics and designed a system to prevent the very crisis we're facing now. If we ignore these historical lessons, we're doomed to repeat the failures of past civilizations that surrendered their liberty for the false promise of security.",
		// constitutional_principle
		"The Constitution isn't just a piece of parchment—it's the foundation of our republic. The Founders created a brilliant system of limited government, separation of powers, and individual rights. They understood that power corrupts, and they designed a framework to prevent tyranny. But today, we're witnessing a systematic effort to undermine these constitutional principles. Each branch of government is exceeding its constitutional authority, and the result is the erosion of our liberties. We must return to first principles and restore constitutional governance.",
		// warning_signs
		"There are warning signs all around us, but we need to connect the dots. When government grows beyond its constitutional limits, when debt spirals out of control, when rights are restricted in the name of security, when dependency replaces self-reliance—these are the warning signs of a republic in decline. History shows us that liberty is fragile and can be lost in a single generation. We're seeing the same patterns that preceded the fall of other great nations throughout history. The time to recognize these warning signs is now, before it's too late.",
		// faith_values
		"Faith and values have always been the bedrock of American society. The Founders understood that our rights come from God, not government, and that a moral people is essential for self-governance. As John Adams said, 'Our Constitution was made only for a moral and religious people. It is wholly inadequate to the government of any other.' The systematic removal of faith from the public square isn't just a religious issue—it's a threat to the very foundation of our republic. When we abandon the moral principles that guided our Founders, we undermine the entire American experiment.",
		// call_to_action
		"This isn't just about politics—it's about preserving the republic for our children and grandchildren. Each of us has a responsibility to understand our Constitution, know our history, and stand for the principles that made America exceptional. We need to educate ourselves and others, engage in the civic process, and hold our representatives accountable to their oath to uphold the Constitution. The power ultimately rests with We the People, and it's time for us to reclaim our rightful role as citizens of a constitutional republic. The future of liberty depends on what we do right now.",
	},
	Sections: []Section{
		{
			// HISTORY LESSON
			At:     AtMiddle,
			MinLen: 3,
			Text:   fixed("HISTORY LESSON: The Founders studied the rise and fall of republics throughout history. They knew that democracies often collapse into tyranny when the people vote themselves benefits from the public treasury. They designed our constitutional republic with checks and balances specifically to prevent the concentration of power. As Benjamin Franklin said, 'When the people find that they can vote themselves money, that will herald the end of the republic.' We're seeing this warning play out before our eyes."),
		},
		{
			// CONSTITUTIONAL PERSPECTIVE
			At:     AtThreeQuarters,
			MinLen: 4,
			Text:   fixed("CONSTITUTIONAL PERSPECTIVE: The Constitution isn't a living, breathing document that changes with the times—it's a contract between the government and the people with a specific amendment process. The Founders created a limited government with enumerated powers, meaning the federal government can only do what the Constitution specifically authorizes it to do. Everything else is reserved to the states or to the people, as the Tenth Amendment clearly states. When we ignore these constitutional boundaries, we undermine the rule of law and threaten the very foundation of our republic."),
		},
	},
	Cosmetics: []Cosmetic{
		{Every: 3, Offset: 0, Rule: &chalkboardRule},
		{Every: 4, Offset: 1, Append: " The Constitution is clear on this."},
		{Every: 5, Offset: 2, Append: " This is exactly what the Founders feared."},
	},
	Prompt: PromptGuide{
		Short: "Beck",
		TitleStyle: []string{
			`For constitution-related topics: "The Constitutional Crisis of [Topic]!", "Freedom Alert: [Topic]!", "Liberty at Risk: [Topic]!"`,
			`For history-related topics: "History Repeating: [Topic]!", "The Founders Warned About [Topic]!", "The Historical Pattern of [Topic]!"`,
			`For general topics: "Connect the Dots: [Topic]!", "The Truth Behind [Topic]!", "Warning Signs: [Topic]!"`,
		},
		LanguagePatterns: []string{
			`Replace "important/significant/crucial" with "critical"`,
			`Replace "problem/issue/concern" with "crisis"`,
			`Replace "said/stated/mentioned" with "warned"`,
			`Replace "may/might/could" with "will"`,
			`Replace "some people think/some believe" with "history shows us"`,
			`Replace "it is possible that" with "mark my words:"`,
			`Replace "it seems that" with "it's clear that"`,
		},
		References: []string{
			"The Constitution",
			"The Founding Fathers",
			"Historical parallels",
			"Connecting dots",
			"Warning signs",
			"First principles",
		},
		Closing: []string{
			`Start with phrases like "Let me leave you with this final thought." or "The choice before us is clear."`,
			`Include a call to action about the Constitution or founding principles`,
			`End with a statement like "The future of our republic hangs in the balance." or "May God continue to bless the United States of America."`,
		},
		SpecialSections: []string{
			`Include a "HISTORY LESSON" section that draws historical parallels`,
			`Include a "CONSTITUTIONAL PERSPECTIVE" section that references founding documents`,
		},
	},
}
