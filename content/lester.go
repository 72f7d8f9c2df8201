package content

import "portfolio/models"

// LesterWrightBiography is the only source the biography Q&A may answer from.
const LesterWrightBiography = `# Lester Wright Sr.: A Century of Speed, Resilience, and Inspiration

**I. The Measure of a Century: Introducing Lester Wright Sr.**
The air at Franklin Field during the 2022 Penn Relays crackled with anticipation... As 100-year-old Lester Wright Sr. stepped onto the track... he crossed the finish line in 26.34 seconds, and the 38,000 spectators rose in a unified standing ovation. This was more than a race; it was a testament to a life lived with vigor and an unyielding spirit. Lester Wright Sr. is widely celebrated as the "world's fastest centenarian."

**II. Forged in Long Branch: Early Life and Enduring Love**
Lester Wright Sr.'s remarkable journey began on April 29, 1922, in Long Branch, New Jersey. During the 1930s, he was a track star at Long Branch High School, where he met Adele, his "high school sweetheart." Their connection blossomed into a marriage that would span an extraordinary 80 years.

**III. Service and Sacrifice: A World War II Veteran**
Lester Wright Sr. served in the U.S. Army during World War II. He was among the soldiers who endured the harrowing conditions of the Battle of the Bulge and earned four Bronze Battle Stars for his courage. He served in a segregated unit.

**IV. Building a Dream: Career, Community, and Family**
Upon returning from the war, he utilized the GI Bill for college and opened the first Black-owned dental lab in Monmouth County, New Jersey, crafting prosthetic teeth. He and Adele raised four children. His son, Lester E. Wright Jr., also became a competitive master runner.

**V. The Unrelenting Stride: A Lifetime Devoted to Running**
Wright maintained a remarkable routine, running a mile-and-a-half at least three times a week even as he approached his centenary. At age 76, he broke the 200-meter world record for the M75 age group. At 77, he won the 75-and-over 100-meter dash at the Penn Relays.

**VI. Racing into History: The Centenarian World Record Holder**
On April 30, 2022, one day after his 100th birthday, he ran the 100-meter dash in 26.34 seconds at the Penn Relays. This shattered the existing world record of 26.99 seconds for the M100 age group, previously held by Donald Pellmann.

**VII. The Wright Philosophy: Insights from a Century of Living**
Wright's philosophy: "If you're going to go out to run a race, you should really run the race to try to win." He also emphasized the power of the mind: "It all starts with self-belief... I think it's in the head more than it is physical." He deeply valued his 80-year partnership with his wife, Adele, as key to his "great life."

**VIII. An Enduring Legacy: The Man Who Outran Time**
Lester Wright Sr.'s life is a rich tapestry... a decorated World War II veteran, a pioneering African American entrepreneur, a devoted husband, and a record-breaking centenarian athlete. His story challenges ageist stereotypes and broadens perceptions of human capability.
`

var lesterHighlights = []Highlight{
	{"World Record Holder", "Shattered the 100m world record for the M100 age group with a time of 26.34 seconds.", "yellow"},
	{"Pioneering Entrepreneur", "Opened the first Black-owned dental lab in Monmouth County, NJ.", "blue"},
	{"80-Year Marriage", "Shared a lifetime of love and partnership with his wife, Adele.", "red"},
	{"WWII Veteran", "Served with distinction in the Battle of the Bulge, earning 4 Bronze Battle Stars.", "green"},
	{"The Wright Philosophy", `"It all starts with self-belief... I think it's in the head more than it is physical."`, "purple"},
	{"Decades of Dominance", "Broke the M75 200m world record at age 76 and won the Penn Relays 100m at 77.", "indigo"},
}

var lesterTimeline = []TimelineEntry{
	{"1922", "Born in Long Branch, New Jersey."},
	{"1930s", "Becomes a high school track star and meets his future wife, Adele."},
	{"WWII", "Serves in the US Army, fighting in the Battle of the Bulge."},
	{"Post-WWII", "Opens the first Black-owned dental lab in Monmouth County."},
	{"1998", "At 76, breaks the M75 200-meter world record."},
	{"1999", "At 77, wins the 75-and-over 100m dash at the Penn Relays."},
	{"2022", "Celebrates his 100th birthday and sets a new 100m world record (M100) the next day."},
}

const lesterError = "An error occurred while fetching the answer. Please try again."

var lesterWrightPage = Page{
	Slug:       "lester-wright-sr-the-man-who-outran-time",
	Title:      "Lester Wright Sr.",
	Subtitle:   "The Man Who Outran Time",
	Summary:    "The life of the world's fastest centenarian, with a Q&A that answers only from his biography.",
	Date:       "June 21, 2025",
	Categories: []string{"Health Tech", "AI"},
	Kind:       KindInfographic,
	Sections: []Section{
		{ID: "glance", Title: "Life at a Glance", Highlights: lesterHighlights},
		{ID: "journey", Title: "A Century's Journey", Timeline: lesterTimeline},
		{
			ID:         "ask",
			Title:      "Ask Me Anything",
			Paragraphs: []string{"Have a question about Lester Wright's life? Ask Gemini for an answer based on his biography."},
			Actions:    []string{"ask"},
		},
	},
	Actions: []Action{{
		ID:              "ask",
		Label:           "Ask Gemini",
		BusyLabel:       "Asking…",
		Input:           InputText,
		Placeholder:     "e.g., How long was he married?",
		EmptyMessage:    "Please enter a question.",
		FallbackAsError: true,
		Fallbacks: models.Fallbacks{
			Status:     lesterError,
			Unexpected: "Couldn't get an answer. The API returned an unexpected response.",
			Transport:  lesterError,
			Blocked:    "Your request was blocked. Reason: ",
		},
	}},
	Footer: "An interactive infographic celebrating the inspiring life of Lester Wright Sr.",
}
