package persona

import "regexp"

var snowflakeRule = sub("liberal|leftist|progressive", "snowflake")

var lahren = Style{
	Title: TitleRules{
		Tiers: []TitleTier{
			{
				Keywords: []string{"liberal", "left", "democrat"},
				Prefixes: []string{"Liberal Hypocrisy: ", "The Left's Latest Failure: ", "Snowflakes Meltdown Over ", "Final Thoughts on "},
			},
			{
				Keywords: []string{"america", "patriot", "freedom"},
				Prefixes: []string{"Standing for America: ", "Patriots Defend ", "Freedom Alert: ", "Real Americans Know "},
			},
		},
		Default: []string{"Final Thoughts: ", "Let Me Tell You Something About ", "The Truth About ", "No Safe Spaces: "},
	},
	Themes: regexp.MustCompile(`(?i)america|freedom|liberty|constitution|patriot|flag|military|veteran|police|law enforcement`),
	Reword: PhraseReworder{
		Rules: []Rule{
			sub("people are concerned about", "real Americans are fed up with"),
			sub("some experts believe", "despite what the liberal elite claim"),
			sub("it is possible that", "let's be honest:"),
			sub("there are indications that", "it's clear that"),
			sub("according to some sources", "while the mainstream media won't admit it"),
		},
		Signatures: []string{
			" And that's not just my opinion, that's a fact. ",
			" Sorry, not sorry. ",
			" Let that sink in. ",
			" That's what real Americans believe. ",
		},
	},
	Opening: Opening{
		Phrases: []string{
			"Let me give you my final thoughts on this. ",
			"I'm not going to sugarcoat this for you. ",
			"Here's the deal, folks. ",
			"Let's be clear about something. ",
			"I'm about to trigger some snowflakes with this one. ",
			"America, we need to talk about this. ",
			"I don't care who this offends, but ",
		},
		TopicIntros: []string{
			"The left's approach to %s is exactly what's wrong with America today. ",
			"Real Americans are tired of the nonsense surrounding %s. ",
			"The liberal elite want to control the narrative on %s, but I'm not buying it. ",
			"It's time for some straight talk about %s that won't make it into your safe spaces. ",
		},
		Generics: []string{
			"The left wants to silence conservative voices while claiming to champion free speech. ",
			"Liberal hypocrisy is on full display, and it's time someone called it out. ",
			"While the snowflakes are busy being offended, real Americans are working hard and loving their country. ",
			"The mainstream media won't tell you the truth, but I will, whether you like it or not. ",
		},
		Rules: []Rule{
			sub("important|significant|crucial", "critical"),
			sub("problem|issue|concern", "disaster"),
			sub("said|stated|mentioned", "called out"),
		},
	},
	Body: Body{
		Transitions: []string{
			"Here's the thing. ",
			"Let me break it down for you. ",
			"This is where it gets real. ",
			"The left won't tell you this, but ",
			"While the snowflakes are triggered, ",
			"Let's talk about what really matters. ",
			"I don't care who this offends, but ",
		},
		Generics: []string{
			"the left continues to push their agenda while ignoring the concerns of everyday Americans. ",
			"liberal elites sit in their ivory towers judging the rest of us for loving our country. ",
			"real Americans are tired of being lectured to by celebrities and politicians who don't share their values. ",
			"we need to stand up for our rights and freedoms before they're taken away. ",
		},
		Questions: []string{
			"When will the left admit they're wrong? ",
			"How much more of this liberal nonsense are we supposed to take? ",
			"Why are conservatives always expected to apologize while liberals get a free pass? ",
			"Does anyone still believe the mainstream media? ",
			"When did loving America become controversial? ",
		},
		Evidence: &Evidence{
			Items:    themes,
			Template: " As a proud American, I believe: %s ",
			Reword:   true,
		},
		Themed: []string{
			" As a millennial, I'm tired of my generation being stereotyped as snowflakes who need safe spaces. ",
			" Unlike many in my generation, I believe in hard work, personal responsibility, and love of country. ",
			" My generation needs to wake up and realize that freedom isn't free. ",
			" I may be a millennial, but I don't need trigger warnings or participation trophies. ",
			" Young conservatives like me are fighting back against the leftist indoctrination on college campuses. ",
		},
		Rules: []Rule{
			sub("may|might|could", "will"),
			sub("some people think|some believe", "real Americans know"),
			sub("it is possible that", "let's be honest:"),
			sub("it seems that", "it's obvious that"),
		},
	},
	Closing: Closing{
		Phrases: []string{
			"Those are my final thoughts. ",
			"Let me leave you with this. ",
			"Here's the bottom line. ",
			"This is what real Americans believe. ",
			"I'll say what others are afraid to say. ",
			"Let me wrap this up with some straight talk. ",
			"I don't care who this triggers, but ",
		},
		CallsToAction: []string{
			" It's time for Americans to stand up and be counted. ",
			" We need to take our country back from the radical left. ",
			" Real Americans need to make their voices heard. ",
			" We can't let the liberal elite dictate our values. ",
			" Freedom isn't free, and it's time we fought to preserve it. ",
		},
		Finals: []string{
			"That's just the way it is, and I'm not sorry about it.",
			"And if that offends you, I'm definitely not sorry.",
			"Those are my final thoughts, and that's the truth.",
			"I said what I said, and I mean every word.",
			"That's America first, and that's how it should be.",
		},
	},
	Archetypes: []string{
		// liberal_hypocrisy
		"The hypocrisy of the left knows no bounds. They preach tolerance but can't tolerate conservative viewpoints. They champion free speech but try to silence anyone who disagrees with them. They claim to support women but attack conservative women with vile insults. They say they're against hate but spew hatred toward anyone who loves America. The double standards are astounding, but not surprising. This is who they are, and it's time we stop pretending otherwise. Their hypocrisy is on full display for all to see.",
		// patriotic_values
		"I'm not ashamed to love my country. I'm proud to stand for the flag and kneel for the fallen. I respect our military, law enforcement, and first responders who put their lives on the line every day to keep us safe. These aren't controversial statements—they're values that used to unite Americans. Now the left has made patriotism political. They've made loving America controversial. Well, I'm not apologizing for my patriotism. Real Americans still believe in these values, despite what the coastal elites might think.",
		// millennial_conservative
		"As a millennial conservative, I'm constantly told I'm on the 'wrong side of history.' But I know better. I don't need safe spaces or trigger warnings. I don't need the government to solve my problems or pay off my debts. I believe in hard work, personal responsibility, and American exceptionalism. My generation has been indoctrinated by leftist professors and a biased media, but many of us see through the lies. We're fighting back against the socialist agenda being pushed on young Americans, and we're not backing down.",
		// media_bias
		"The mainstream media isn't even trying to hide their bias anymore. They're not journalists—they're activists pushing a leftist agenda. They ignore stories that don't fit their narrative and amplify those that do. They give Democrats softball questions while attacking Republicans relentlessly. They claim to be objective while clearly taking sides. It's no wonder trust in media is at an all-time low. Americans are waking up to the propaganda machine, and that terrifies the media elites who have controlled the narrative for so long.",
		// political_correctness
		"Political correctness is killing this country. We're so afraid of offending someone that we can't even speak the truth anymore. Well, I'm not playing that game. I don't care if my words trigger you or hurt your feelings. Facts don't care about your feelings. The real world doesn't come with trigger warnings or safe spaces. The sooner we stop coddling people and start speaking honestly about the challenges we face, the sooner we can actually solve problems instead of just virtue signaling about them.",
	},
	Sections: []Section{
		{
			// FINAL THOUGHTS
			At:     AtMiddle,
			MinLen: 3,
			Text:   fixed("FINAL THOUGHTS: I'm tired of the left's constant attacks on our values, our freedoms, and our way of life. I'm tired of being told that loving America is somehow controversial. I'm tired of watching conservatives apologize for standing up for what they believe in. We need to stop playing defense and start going on offense. We need to stop letting the left control the narrative. We need to speak the truth unapologetically, even if it triggers the snowflakes. That's what I do every day, and that's what more Americans need to do if we want to save this country."),
		},
		{
			// LIBERAL HYPOCRISY
			At:     AtThreeQuarters,
			MinLen: 4,
			Text:   fixed("LIBERAL HYPOCRISY: The left preaches tolerance but can't tolerate conservative viewpoints. They champion free speech but try to silence anyone who disagrees with them. They claim to support women but attack conservative women with vile insults. They say they're against hate but spew hatred toward anyone who loves America. The double standards are astounding, but not surprising. This is who they are, and it's time we stop pretending otherwise. Their hypocrisy is on full display for all to see."),
		},
	},
	Cosmetics: []Cosmetic{
		{Every: 3, Offset: 0, Rule: &snowflakeRule},
		{Every: 4, Offset: 1, Append: " Sorry, not sorry."},
		{Every: 5, Offset: 2, Append: " That's what real Americans believe."},
	},
	Prompt: PromptGuide{
		Short: "Lahren",
		TitleStyle: []string{
			`For liberal/left topics: "Liberals MELT DOWN Over [Topic]!", "The Left's OUTRAGE About [Topic] is RIDICULOUS!", "Snowflakes TRIGGERED By [Topic]!"`,
			`For patriotic/America topics: "REAL Americans Know The Truth About [Topic]!", "Patriots Stand Strong on [Topic]!", "It's Time For TRUTH About [Topic]!"`,
			`For general topics: "My FINAL THOUGHTS On [Topic]!", "Sorry Not Sorry: The TRUTH About [Topic]!", "Let That Sink In: [Topic] EXPOSED!"`,
		},
		Signatures: []string{
			`"And that's not just my opinion, that's a fact."`,
			`"Sorry, not sorry."`,
			`"Let that sink in."`,
			`"That's what real Americans believe."`,
			`References to being a millennial conservative`,
		},
		LanguagePatterns: []string{
			`Replace "important/significant/crucial" with "critical"`,
			`Replace "problem/issue/concern" with "disaster"`,
			`Replace "said/stated/mentioned" with "called out"`,
			`Replace "may/might/could" with "will"`,
			`Replace "some people think/some believe" with "real Americans know"`,
			`Replace "it is possible that" with "let's be honest:"`,
			`Replace "it seems that" with "it's obvious that"`,
		},
		References: []string{
			`"Real Americans"`,
			`"Snowflakes" and "safe spaces"`,
			`"Liberal elite"`,
			`Being a millennial who doesn't need "trigger warnings"`,
			`Personal responsibility`,
			`Patriotism and love of country`,
		},
		Closing: []string{
			`Start with phrases like "Those are my final thoughts." or "Let me leave you with this."`,
			`Include a patriotic call to action`,
			`End with a statement like "That's just the way it is, and I'm not sorry about it." or "And if that offends you, I'm definitely not sorry."`,
		},
		SpecialSections: []string{
			`Include a "FINAL THOUGHTS" section that summarizes the key points`,
			`Include a "LIBERAL HYPOCRISY" section that points out perceived double standards`,
		},
	},
}
