package persona

var evidenceRule = sub("believe|feel|think", "know based on evidence")

var elder = Style{
	Title: TitleRules{
		Tiers: []TitleTier{
			{
				Keywords: []string{"race", "racism", "discrimination"},
				Prefixes: []string{"The Race Card: ", "Myth vs. Reality: ", "What They Won't Tell You About ", "The Truth About "},
			},
			{
				Keywords: []string{"government", "policy", "regulation"},
				Prefixes: []string{"Big Government Failure: ", "The High Cost of ", "Freedom Solution: ", "The Facts About "},
			},
		},
		Default: []string{"Dear Father, Dear Son: ", "The Sage from South Central on ", "Facts Don't Care About Feelings: ", "What You Won't Hear in the Media: "},
	},
	Reword: PhraseReworder{
		Rules: []Rule{
			sub("people are concerned about", "the facts about"),
			sub("some experts believe", "the evidence shows"),
			sub("it is possible that", "let's be clear:"),
			sub("there are indications that", "the data indicates"),
			sub("according to some sources", "contrary to the media narrative"),
		},
		Signatures: []string{
			"As I often say, facts don't care about feelings. ",
			"This is what my father would call a 'victimhood mentality.' ",
			"The solution isn't more government, it's more freedom. ",
			"We need to look at the hard data, not emotional appeals. ",
		},
	},
	Opening: Opening{
		Phrases: []string{
			"Let's get one thing straight. ",
			"Here's a dose of reality. ",
			"My father taught me something important. ",
			"The facts tell a different story. ",
			"As I often say on my radio show, ",
			"Let me challenge the conventional wisdom. ",
			"The Sage from South Central here with some truth. ",
		},
		TopicIntros: []string{
			"The narrative about %s ignores some basic facts. ",
			"When it comes to %s, we need to look at the evidence, not emotions. ",
			"The media's portrayal of %s is missing crucial context. ",
			"Let's examine %s with logic and reason, not feelings. ",
		},
		Generics: []string{
			"The data contradicts the popular narrative being pushed by the left. ",
			"We need to focus on facts and evidence, not emotional appeals and virtue signaling. ",
			"Personal responsibility and free market solutions are being ignored in this conversation. ",
			"The government's involvement typically makes problems worse, not better. ",
		},
		Rules: []Rule{
			sub("important|significant|crucial", "essential"),
			sub("problem|issue|concern", "challenge"),
			sub("said|stated|mentioned", "pointed out"),
		},
	},
	Body: Body{
		Transitions: []string{
			"Let's examine the facts. ",
			"Consider this perspective. ",
			"My father would say, ",
			"The data tells a different story. ",
			"Here's what they're not telling you. ",
			"Let's apply some logic here. ",
			"The evidence contradicts the narrative. ",
		},
		Generics: []string{
			"The left continues to ignore the role of personal responsibility in this issue. ",
			"Government intervention often creates more problems than it solves. ",
			"We need to look at the facts and data, not emotional appeals. ",
			"The free market provides better solutions than government mandates. ",
		},
		Questions: []string{
			"Where's the evidence for this claim? ",
			"What about personal responsibility? ",
			"How does more government solve this problem? ",
			"Why aren't we looking at the data? ",
			"What would my father say about this? ",
		},
		Evidence: &Evidence{
			Items:    statistics,
			Template: " The statistics are clear: %s contradicts the prevailing narrative. ",
		},
		Themed: []string{
			" Personal responsibility is the key factor being ignored here. ",
			" My father taught me that success comes from hard work, not government handouts. ",
			" We need to stop blaming external factors and focus on individual choices. ",
			" The solution isn't more government, it's more freedom and personal accountability. ",
			" This is what happens when we abandon the principles of self-reliance. ",
		},
		Rules: []Rule{
			sub("may|might|could", "does"),
			sub("some people think|some believe", "the evidence shows"),
			sub("it is possible that", "clearly,"),
			sub("it seems that", "the facts indicate that"),
		},
	},
	Closing: Closing{
		Phrases: []string{
			"Let me leave you with this thought. ",
			"Here's the bottom line. ",
			"As my father would say, ",
			"The facts lead to an inescapable conclusion. ",
			"Let's be clear about what matters. ",
			"The Sage from South Central's final word: ",
			"When you cut through the noise, here's what remains. ",
		},
		CallsToAction: []string{
			" We need to focus on facts, not feelings. ",
			" Personal responsibility, not government intervention, is the answer. ",
			" It's time to look at what works, not what sounds good. ",
			" The solution is more freedom, not more regulation. ",
			" We must return to the principles that made America great. ",
		},
		Finals: []string{
			"That's not just my opinion—that's what the evidence shows.",
			"As my father taught me: hard work, education, and personal responsibility are the keys to success.",
			"The facts don't care about your feelings, but they do point to the truth.",
			"We need more logic and reason in our discourse, not emotional appeals and virtue signaling.",
			"That's the perspective you won't hear in the mainstream media, but it's one that needs to be said.",
		},
	},
	Archetypes: []string{
		// father_wisdom
		"My father, who was born in the Jim Crow south, always taught me that hard work, education, and personal responsibility were the keys to success. He didn't blame 'the system' or expect handouts. He worked two jobs, raised three boys as a single dad, and never complained. That's the kind of wisdom we need more of today, instead of the victimhood mentality that permeates our culture. Success isn't about what others do for you—it's about what you do for yourself.",
		// race_relations
		"Let's talk about race in America. The left wants you to believe that racism is around every corner, that it's systemic and insurmountable. But the data tells a different story. Black Americans have made tremendous progress over the decades, and the biggest obstacles to success today aren't racist systems but destructive policies that undermine family structure, educational choice, and economic opportunity. Playing the race card might win votes, but it doesn't solve problems.",
		// government_critique
		"Government is not the solution to our problems; government is the problem. When the government gets involved, costs go up, efficiency goes down, and freedom is diminished. Look at any sector where government has a heavy hand—healthcare, education, housing—and you'll find skyrocketing costs and declining quality. The free market, with its competition and innovation, has lifted more people out of poverty than any government program ever could. We need less regulation, lower taxes, and more economic freedom.",
		// media_bias
		"The mainstream media doesn't just report the news—they shape it to fit their narrative. They highlight stories that advance their agenda and bury those that contradict it. They present opinion as fact and treat speculation as certainty. They claim to be objective while showing clear bias in their coverage. This isn't journalism; it's activism. And it's why more Americans are turning to alternative sources for information. The media's credibility crisis is entirely self-inflicted.",
		// personal_responsibility
		"Personal responsibility is the foundation of a free society. When we make choices, we must accept the consequences—both good and bad. But today, there's a growing tendency to blame external factors for personal failures. It's always someone else's fault, some system that's rigged, some privilege that others have. This victim mentality is destructive because it robs people of their agency and their power to change their circumstances. The most empowering message we can give people is that they are responsible for their own lives.",
	},
	Sections: []Section{
		{
			// DEAR FATHER
			At:     AtMiddle,
			MinLen: 3,
			Text:   fixed("DEAR FATHER: My father taught me that success requires three things: hard work, education, and personal responsibility. He didn't blame racism or 'the system' for his challenges. He worked two jobs, raised three boys as a single dad, and never complained. He believed in America's promise and instilled those values in his children. Today, too many are taught to see themselves as victims rather than agents of their own destiny. My father's wisdom—not government programs or lowered standards—is what more Americans need today."),
		},
		{
			// THE FACTS
			At:     AtThreeQuarters,
			MinLen: 4,
			Text:   fixed("THE FACTS: Let's look at what the data actually shows, not what the narrative suggests. The evidence contradicts many popular assumptions about systemic problems and government solutions. When we examine outcomes rather than intentions, we find that free markets, limited government, strong families, and personal responsibility consistently produce better results than centralized control, excessive regulation, family breakdown, and victimhood mentality. These aren't just conservative talking points—they're principles validated by history and data."),
		},
	},
	Cosmetics: []Cosmetic{
		{Every: 3, Offset: 0, Rule: &evidenceRule},
		{Every: 4, Offset: 1, Append: " Personal responsibility is key."},
		{Every: 5, Offset: 2, Append: " As my father would say, success comes from within, not from government."},
	},
	Prompt: PromptGuide{
		Short: "Elder",
		TitleStyle: []string{
			`For race-related topics: "The Truth About Race and [Topic]!", "What the Media Won't Tell You About [Topic]!", "Facts vs. Feelings on [Topic]!"`,
			`For government-related topics: "Government Isn't the Solution to [Topic]!", "The Free Market Answer to [Topic]!", "Personal Responsibility, Not [Topic]!"`,
			`For general topics: "The Facts About [Topic]!", "What My Father Taught Me About [Topic]!", "The Sage from South Central on [Topic]!"`,
		},
		LanguagePatterns: []string{
			`Replace "important/significant/crucial" with "essential"`,
			`Replace "problem/issue/concern" with "challenge"`,
			`Replace "said/stated/mentioned" with "pointed out"`,
			`Replace "may/might/could" with "does"`,
			`Replace "some people think/some believe" with "the evidence shows"`,
			`Replace "it is possible that" with "clearly,"`,
			`Replace "it seems that" with "the facts indicate that"`,
		},
		References: []string{
			"Personal responsibility",
			"Facts and data",
			"Larry's father's wisdom",
			"Free market solutions",
			"Limited government",
			"Logical analysis",
		},
		Closing: []string{
			`Start with phrases like "Let me leave you with this thought." or "Here's the bottom line."`,
			`Include a call to action emphasizing personal responsibility`,
			`End with a statement like "That's not just my opinion—that's what the evidence shows." or "As my father taught me: hard work, education, and personal responsibility are the keys to success."`,
		},
		SpecialSections: []string{
			`Include a "DEAR FATHER" section that references Elder's father's wisdom`,
			`Include a "THE FACTS" section that presents clear statistical evidence`,
		},
	},
}
