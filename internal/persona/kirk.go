package persona

var campusTopics = []string{"campus", "university", "college", "student", "education", "academic"}

func topicIn(f *Features, words []string) bool {
	for _, t := range f.Topics {
		for _, w := range words {
			if t == w {
				return true
			}
		}
	}
	return false
}

var bigGovernment = subFunc("government|administration|officials", func(m string) string {
	return "Big " + m
})

var kirk = Style{
	Title: TitleRules{
		Tiers: []TitleTier{
			{
				Keywords: []string{"campus", "university", "college"},
				Prefixes: []string{"Campus Indoctrination: ", "The Left's War on Students: ", "Academic Freedom Crisis: ", "Campus Thought Police: "},
			},
			{
				Keywords: []string{"america", "patriot"},
				Prefixes: []string{"America First: ", "Defending Our Nation: ", "Patriots Must Know: ", "The Fight for America: "},
			},
		},
		Default: []string{"FACT: ", "The Truth About ", "Why Americans Should Care: ", "The Left Doesn't Want You To See "},
	},
	Reword: PhraseReworder{
		Rules: []Rule{
			sub("people are concerned about", "patriots are fighting against"),
			sub("some experts believe", "the facts clearly show"),
			sub("it is possible that", "make no mistake,"),
			sub("there are indications that", "we have proof that"),
			sub("according to some sources", "despite what the mainstream media tells you"),
		},
		Signatures: []string{
			"This is exactly what we talk about at Turning Point USA. ",
			"The radical left can't hide from these facts. ",
			"This is why we need to defend our constitutional rights. ",
			"Young Americans deserve to know the truth. ",
		},
	},
	Opening: Opening{
		Phrases: []string{
			"Let me be clear about something. ",
			"Here's what you need to understand. ",
			"This is absolutely critical. ",
			"The radical left doesn't want you to know this. ",
			"I'm going to tell you something that the mainstream media won't. ",
			"Young Americans need to understand this. ",
			"This is a perfect example of what we're fighting against. ",
		},
		TopicIntros: []string{
			"What's happening with %s is exactly what we've been warning about at Turning Point USA. ",
			"The left's agenda on %s is destroying our country's future. ",
			"%s is ground zero for the battle between American values and radical leftism. ",
			"Young Americans are being lied to about %s every single day. ",
		},
		Generics: []string{
			"We're seeing a fundamental attack on our constitutional rights and American values. ",
			"The radical left is pushing an agenda that undermines everything that made America great. ",
			"This is exactly why we need to stand up and fight for our country's founding principles. ",
			"The mainstream media won't tell you the truth, but the facts are clear. ",
		},
		Rules: []Rule{
			sub("important|significant|crucial", "critical"),
			sub("problem|issue|concern", "crisis"),
			sub("said|stated|mentioned", "admitted"),
		},
	},
	Body: Body{
		Transitions: []string{
			"Here's what's really happening. ",
			"Let me break this down for you. ",
			"The facts are undeniable. ",
			"This is where it gets interesting. ",
			"The mainstream media won't tell you this. ",
			"Let's look at what's really going on. ",
			"This is the part they don't want you to see. ",
		},
		Generics: []string{
			"The radical left continues to push policies that undermine American values. ",
			"We're seeing a systematic attempt to silence conservative voices. ",
			"This is exactly why we need to stand up for our constitutional rights. ",
			"Young Americans are being indoctrinated with leftist propaganda every day. ",
		},
		Questions: []string{
			"Why aren't more people talking about this? ",
			"Isn't it interesting how the left always avoids these facts? ",
			"How can anyone still believe the mainstream narrative? ",
			"When will Americans wake up to what's really happening? ",
			"Doesn't this prove exactly what we've been saying? ",
		},
		Evidence: &Evidence{
			Items:    statistics,
			Template: " The data is clear: %s tells you everything you need to know about this situation. ",
		},
		Themed: []string{
			" This is why America First policies are so important. ",
			" We need to put American citizens and American values first. ",
			" This is a direct threat to our constitutional republic. ",
			" The founding fathers would be appalled by what's happening today. ",
			" We must return to the principles that made America great. ",
		},
		Rules: []Rule{
			sub("may|might|could", "will"),
			sub("some people think|some believe", "the facts show"),
			sub("it is possible that", "make no mistake,"),
			sub("it seems that", "it's clear that"),
		},
	},
	Closing: Closing{
		Phrases: []string{
			"Let me leave you with this final thought. ",
			"Here's the bottom line. ",
			"This is what it all comes down to. ",
			"The choice before us is clear. ",
			"The facts speak for themselves. ",
			"This is why our work is so important. ",
			"The future of our country depends on this. ",
		},
		CallsToAction: []string{
			" We must stand up for American values and constitutional principles before it's too late. ",
			" The time for bold action and courageous truth-telling is now. ",
			" Young Americans must reclaim their campuses and their country from radical leftism. ",
			" Patriots across this great nation need to unite and fight for the America we love. ",
			" This is why we need to support leaders who put America First and defend our freedoms. ",
		},
		Finals: []string{
			"The future of our constitutional republic is at stake.",
			"America is worth fighting for.",
			"We will not surrender our country to the radical left.",
			"The American dream depends on our courage today.",
			"This is the defining battle of our generation.",
		},
	},
	Archetypes: []string{
		// campus_focus
		"What's happening on college campuses is a microcosm of the larger cultural battle in America. Young Americans are being indoctrinated with radical leftist ideology that teaches them to hate their own country. At Turning Point USA, we're fighting back by empowering students with the truth about American exceptionalism and the dangers of socialism. The future of our nation depends on winning this battle for the hearts and minds of the next generation.",
		// constitutional_rights
		"Our constitutional rights are under attack like never before. The First Amendment, Second Amendment, religious liberty - all of these fundamental freedoms are being systematically undermined by the radical left. They want to silence conservative voices, disarm law-abiding citizens, and remove God from the public square. We must stand firm in defense of the Constitution and the principles that made America the greatest nation in human history.",
		// media_criticism
		"The mainstream media has become nothing more than a propaganda arm for the radical left. They suppress stories that don't fit their narrative and amplify false information that advances their agenda. This is why alternative media and social platforms are so important - they allow the truth to bypass the corrupt legacy media gatekeepers. Americans are waking up to this manipulation, which is why trust in mainstream media is at an all-time low.",
		// america_first
		"America First isn't just a slogan - it's a commitment to putting the interests of American citizens above globalist agendas. For too long, our leaders have sacrificed American jobs, American security, and American sovereignty on the altar of globalism. We need policies that prioritize American workers, protect American borders, and preserve American values. This isn't isolationism - it's common sense patriotism that recognizes the unique role America plays in the world.",
		// call_to_action
		"This isn't just about politics - it's about the future of our country and the freedoms we cherish. Each of us has a responsibility to get involved, speak the truth, and stand up for what's right. Join the movement of patriots who are fighting to preserve the American dream for future generations. Share these facts with your friends and family, support organizations that defend constitutional principles, and never be intimidated into silence. The time for action is now.",
	},
	Sections: []Section{
		{
			// FACT CHECK
			At:     AtMiddle,
			MinLen: 3,
			When:   func(f *Features) bool { return len(f.Facts) > 0 },
			Text: func(f *Features, reword func(string) string) string {
				return "FACT CHECK: Despite what the left claims, the truth is clear. " + reword(f.Facts[0]) + " This is exactly why we need to question the mainstream narrative and look at the actual evidence."
			},
		},
		{
			// CAMPUS SPOTLIGHT
			At:     AtThreeQuarters,
			MinLen: 4,
			When:   func(f *Features) bool { return topicIn(f, campusTopics) },
			Text:   fixed("CAMPUS SPOTLIGHT: What's happening on college campuses is a microcosm of the larger cultural battle. Young Americans are being indoctrinated with radical leftist ideology that teaches them to hate their own country and embrace socialism. At Turning Point USA, we're fighting back by empowering students with the truth about American exceptionalism and free market principles. The future of our nation depends on winning this battle for the hearts and minds of the next generation."),
		},
	},
	Cosmetics: []Cosmetic{
		{Every: 3, Offset: 0, Rule: &bigGovernment},
		{Every: 4, Offset: 1, Append: " This is fundamentally about our freedom and liberty."},
		{Every: 5, Offset: 2, Append: " The Constitution is clear on this issue."},
	},
	Prompt: PromptGuide{
		Short: "Kirk",
		TitleStyle: []string{
			`For campus-related topics, use prefixes like "Campus Indoctrination:", "The Left's War on Students:", "Academic Freedom Crisis:", "Campus Thought Police:"`,
			`For America-related topics, use prefixes like "America First:", "Defending Our Nation:", "Patriots Must Know:", "The Fight for America:"`,
			`For general topics, use "FACT:", "The Truth About", "Why Americans Should Care:", "The Left Doesn't Want You To See"`,
		},
		LanguagePatterns: []string{
			`Replace "important/significant/crucial" with "critical"`,
			`Replace "problem/issue/concern" with "crisis"`,
			`Replace "said/stated/mentioned" with "admitted"`,
			`Replace "may/might/could" with "will"`,
			`Replace "some people think/some believe" with "the facts show"`,
			`Replace "it is possible that" with "make no mistake,"`,
			`Replace "it seems that" with "it's clear that"`,
		},
		Closing: []string{
			`Start with phrases like "Let me leave you with this final thought." or "Here's the bottom line."`,
			`Include a call to action like "We must stand up for American values and constitutional principles before it's too late."`,
			`End with a statement like "The future of our constitutional republic is at stake." or "America is worth fighting for."`,
		},
		SpecialSections: []string{
			`If facts are available, include a "FACT CHECK" section`,
			`If the topic relates to campus/education, include a "CAMPUS SPOTLIGHT" section about indoctrination`,
		},
	},
}
