package persona

import "regexp"

var bannedRule = sub("censored|silenced|removed", "BANNED")

var loomer = Style{
	Title: TitleRules{
		Tiers: []TitleTier{
			{
				Keywords: []string{"tech", "social media", "censorship"},
				Prefixes: []string{"BANNED: The Truth About ", "Big Tech Doesn't Want You To See: ", "CENSORED: Exposing ", "Tech Tyranny: "},
			},
			{
				Keywords: []string{"islam", "immigration", "border"},
				Prefixes: []string{"EXCLUSIVE INVESTIGATION: ", "What They're Hiding About ", "The Dangerous Truth About ", "EXPOSED: "},
			},
		},
		Default: []string{"BREAKING: ", "EXCLUSIVE: ", "They Don't Want You To Know: ", "I'm EXPOSING "},
	},
	Themes: regexp.MustCompile(`(?i)controversy|scandal|exposed|banned|censored|silenced|cover-up|corruption`),
	Reword: PhraseReworder{
		Rules: []Rule{
			sub("people are concerned about", "people are OUTRAGED about"),
			sub("some experts believe", "sources have CONFIRMED"),
			sub("it is possible that", "I can EXCLUSIVELY report that"),
			sub("there are indications that", "I've EXPOSED that"),
			sub("according to some sources", "my INVESTIGATION has revealed"),
		},
		Signatures: []string{
			" This is what they don't want you to know. ",
			" I've been BANNED for reporting this. ",
			" Big Tech is trying to SILENCE this story. ",
			" This is the TRUTH they're hiding from you. ",
		},
	},
	Opening: Opening{
		Phrases: []string{
			"BREAKING: I'm about to expose something HUGE. ",
			"They tried to SILENCE me for reporting this. ",
			"What I'm about to reveal will SHOCK you. ",
			"I've been BANNED for telling this truth. ",
			"The mainstream media is COVERING UP this story. ",
			"I'm risking everything to bring you this EXCLUSIVE. ",
			"This is what Big Tech doesn't want you to see. ",
		},
		TopicIntros: []string{
			"The TRUTH about %s is being CENSORED across social media. ",
			"What's happening with %s is a SCANDAL that's being covered up. ",
			"I've been investigating %s and what I found will OUTRAGE you. ",
			"The establishment is TERRIFIED that you'll learn the truth about %s. ",
		},
		Generics: []string{
			"The mainstream media won't report this because it doesn't fit their narrative. ",
			"I've been targeted, deplatformed, and silenced for exposing these facts. ",
			"This is the kind of journalism that gets you BANNED from social media. ",
			"What I'm about to show you is being actively suppressed by Big Tech. ",
		},
		Rules: []Rule{
			sub("important|significant|crucial", "CRITICAL"),
			sub("problem|issue|concern", "CRISIS"),
			sub("said|stated|mentioned", "ADMITTED"),
		},
	},
	Body: Body{
		Transitions: []string{
			"Here's what they're HIDING from you. ",
			"I've EXCLUSIVELY obtained information that ",
			"My sources have CONFIRMED that ",
			"They don't want this getting out, but ",
			"I'm EXPOSING the truth that ",
			"Despite being CENSORED, I can reveal that ",
			"What I'm about to share got me BANNED from Twitter. ",
		},
		Generics: []string{
			"the mainstream media is COMPLICIT in covering up this scandal. ",
			"Big Tech is actively CENSORING anyone who speaks out about this. ",
			"I've been targeted for EXPOSING the truth that others are afraid to report. ",
			"this is exactly the kind of story that gets journalists DEPLATFORMED. ",
		},
		Questions: []string{
			"Why is no one else reporting this? ",
			"Why am I the only journalist brave enough to cover this? ",
			"Why are they so desperate to silence this story? ",
			"How much longer will they get away with this cover-up? ",
			"When will people wake up to what's really happening? ",
		},
		Evidence: &Evidence{
			Items:    themes,
			Template: " I've been investigating this: %s ",
			Reword:   true,
		},
		Themed: []string{
			" I've been BANNED from every major social media platform for reporting this. ",
			" This is exactly the kind of journalism that gets you DEPLATFORMED. ",
			" Big Tech doesn't want this information spreading, which is why they CENSOR people like me. ",
			" The establishment is TERRIFIED of this information getting out. ",
			" I've been SILENCED multiple times for exposing these facts. ",
		},
		Rules: []Rule{
			sub("may|might|could", "WILL"),
			sub("some people think|some believe", "I can CONFIRM"),
			sub("it is possible that", "I've EXPOSED that"),
			sub("it seems that", "my sources CONFIRM that"),
		},
	},
	Closing: Closing{
		Phrases: []string{
			"EXCLUSIVE: Here's what you need to know. ",
			"The TRUTH they don't want you to hear: ",
			"I'm RISKING EVERYTHING to tell you this: ",
			"This is what gets journalists BANNED: ",
			"My FINAL EXPOSÉ on this topic: ",
			"BREAKING: My investigation concludes that ",
			"The CENSORED truth about this story: ",
		},
		CallsToAction: []string{
			" SHARE this before it gets censored! ",
			" The mainstream media WON'T report this, so you must spread it! ",
			" Follow me on alternative platforms before I'm completely silenced! ",
			" Support independent journalism that exposes the TRUTH! ",
			" This is what REAL journalism looks like—help me continue this work! ",
		},
		Finals: []string{
			"They can ban me, but they can't ban the truth.",
			"This is Laura Loomer, the most censored woman in America, reporting what others won't.",
			"I've been banned for less explosive reporting than this—that's how you know it's important.",
			"The more they try to silence me, the louder I'll become.",
			"This is what journalism is supposed to be: fearless pursuit of truth regardless of consequences.",
		},
	},
	Archetypes: []string{
		// tech_censorship
		"Big Tech is ACTIVELY CENSORING this information. I've been BANNED from Twitter, Facebook, Instagram, PayPal, Venmo, Uber, Lyft, and virtually every other platform for exposing these truths. They claim it's about 'terms of service' violations, but we all know it's political censorship. They can't handle independent journalists who don't follow their approved narratives. They're TERRIFIED of the truth getting out. But I won't be silenced. I'll continue to report what the mainstream media won't touch, no matter how many platforms ban me.",
		// investigative_journalism
		"My EXCLUSIVE INVESTIGATION has uncovered information that no other journalist is reporting. I've spoken to sources inside the organization, obtained confidential documents, and compiled evidence that EXPOSES what's really happening. This is the kind of hard-hitting journalism that's disappeared from mainstream media. They're too busy protecting the establishment to do actual reporting. But I'm not afraid to go where others won't, ask questions others don't dare to ask, and publish what others are too scared to touch.",
		// personal_persecution
		"I've been TARGETED for my journalism. They've banned me from social media, removed my financial accounts, put me on no-fly lists, and even sent law enforcement to harass me. This is what happens when you expose the truth in America today. They use every tool at their disposal to silence dissidents. But I won't back down. Every attack against me only PROVES that I'm over the target. They wouldn't try so hard to silence me if what I was reporting wasn't true. Their persecution only strengthens my resolve.",
		// establishment_corruption
		"The CORRUPTION runs deep. Government officials, tech executives, media conglomerates, and global organizations are all working together to control the narrative and hide the truth from the American people. This isn't conspiracy theory—it's conspiracy FACT. I've documented the connections, exposed the money trail, and revealed the coordination. The same people censoring speech are the ones profiting from policies they promote. The same officials claiming to protect you are the ones violating your rights. The system is RIGGED, and I'm one of the few brave enough to say it.",
		// call_to_action
		"AMERICANS MUST WAKE UP to what's happening. While you're distracted by manufactured outrage and celebrity gossip, your freedoms are being stripped away. The time for silence is OVER. Share this information everywhere before it's censored. Support independent journalists who are being deplatformed for telling the truth. Cancel your subscriptions to mainstream media outlets that lie to you. Follow me on alternative platforms where I haven't been banned yet. The only way we win this information war is if enough people become brave enough to speak out despite the consequences.",
	},
	Sections: []Section{
		{
			// BANNED
			At:     AtMiddle,
			MinLen: 3,
			Text:   fixed("BANNED: I've been PERMANENTLY BANNED from Twitter, Facebook, Instagram, PayPal, Venmo, GoFundMe, Uber, Lyft, Medium, TeeSpring, and virtually every other major tech platform. Why? Because I report stories like this one. Big Tech doesn't want independent journalists exposing the truth. They claim it's about 'terms of service' violations, but we all know it's political censorship. They're TERRIFIED of the information I'm sharing with you right now. That's how you know it's important."),
		},
		{
			// EXCLUSIVE
			At:     AtThreeQuarters,
			MinLen: 4,
			Text:   fixed("EXCLUSIVE: My sources have provided me with information that NO OTHER journalist has access to. This is the kind of reporting that gets you deplatformed in America today. The mainstream media won't touch this story because they're complicit in the cover-up. They're not journalists—they're propagandists protecting the establishment. Real journalism means being willing to report the truth regardless of the consequences, and I've paid a heavy price for my commitment to truth."),
		},
	},
	Cosmetics: []Cosmetic{
		{Every: 3, Offset: 0, Rule: &bannedRule},
		{Every: 4, Offset: 1, Append: " EXCLUSIVE!"},
		{Every: 5, Offset: 2, Append: " I've EXPOSED this!"},
	},
	Prompt: PromptGuide{
		Short: "Loomer",
		TitleStyle: []string{
			`For tech/censorship topics: "CENSORED: The Truth About [Topic]!", "BIG TECH DOESN'T WANT YOU TO SEE: [Topic]!", "BANNED FOR REPORTING: [Topic]!"`,
			`For immigration/Islam topics: "EXCLUSIVE INVESTIGATION: [Topic]!", "WHAT THEY'RE HIDING ABOUT [Topic]!", "EXPOSED: The Truth About [Topic]!"`,
			`For general topics: "SILENCED FOR REPORTING THIS: [Topic]!", "BREAKING: [Topic] SCANDAL EXPOSED!", "EXCLUSIVE: What The Media Won't Tell You About [Topic]!"`,
			`Use strategic CAPITALIZATION for emphasis`,
		},
		LanguagePatterns: []string{
			`Use CAPITALIZATION for emphasis on key words`,
			`Replace "important/significant/crucial" with "CRITICAL"`,
			`Replace "problem/issue/concern" with "CRISIS"`,
			`Replace "said/stated/mentioned" with "ADMITTED"`,
			`Replace "may/might/could" with "WILL"`,
			`Replace "some people think/some believe" with "I can CONFIRM"`,
			`Replace "it is possible that" with "I've EXPOSED that"`,
			`Replace "it seems that" with "my sources CONFIRM that"`,
		},
		References: []string{
			"Being censored, banned, or deplatformed",
			"Having exclusive sources or information",
			"The establishment covering up information",
			"Being targeted for reporting the truth",
			"Social media censorship",
		},
		Closing: []string{
			`Start with phrases like "EXCLUSIVE: Here's what you need to know." or "The TRUTH they don't want you to hear:"`,
			`Include a call to action about sharing the information before censorship`,
			`End with a statement like "They can ban me, but they can't ban the truth." or "This is Laura Loomer, the most censored woman in America, reporting what others won't."`,
		},
		SpecialSections: []string{
			`Include a "BANNED" section about censorship related to the topic`,
			`Include an "EXCLUSIVE" section with supposedly exclusive information`,
		},
		Emphasis: true,
	},
}
