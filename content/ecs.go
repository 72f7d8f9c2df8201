package content

import (
	"portfolio/charts"
	"portfolio/models"
)

// Audience selects the register of ECS explanations and chat answers.
type Audience string

const (
	AudienceGeneral    Audience = "general"
	AudienceStudent    Audience = "student"
	AudienceHealthcare Audience = "healthcare"
)

// Audiences lists the audiences in display order.
func Audiences() []Audience {
	return []Audience{AudienceGeneral, AudienceStudent, AudienceHealthcare}
}

// ParseAudience maps a raw value to an Audience; anything unknown is general.
func ParseAudience(s string) Audience {
	switch Audience(s) {
	case AudienceStudent, AudienceHealthcare:
		return Audience(s)
	default:
		return AudienceGeneral
	}
}

// Module is one unit of the ECS curriculum.
type Module struct {
	ID        string
	Title     string
	KeyPoints []string
	Expanded  map[Audience]string
	Chart     string
}

var ecsModules = []Module{
	{
		ID:    "foundations",
		Title: "ECS Foundations",
		KeyPoints: []string{
			"The ECS has 3 main parts: receptors (CB1 & CB2), endocannabinoids (anandamide & 2-AG), and enzymes",
			"CB1 receptors are mostly in the brain, CB2 receptors are mostly in immune tissues",
			"The ECS helps maintain balance (homeostasis) throughout your body",
		},
		Expanded: map[Audience]string{
			AudienceGeneral:    "The endocannabinoid system (ECS) was discovered in the 1990s. It works like a communication network in your body, helping different systems talk to each other and stay balanced.",
			AudienceStudent:    "The ECS consists of cannabinoid receptors (CB1 and CB2), endogenous cannabinoids (anandamide and 2-AG), and metabolic enzymes (FAAH, MAGL). This system uses retrograde signaling and on-demand activation.",
			AudienceHealthcare: "The ECS represents a complex neuromodulatory system with CB1 receptors primarily in CNS (hippocampus, cortex, cerebellum) and CB2 in peripheral immune tissues. Endocannabinoid tone varies significantly between individuals and clinical populations.",
		},
		Chart: "foundations",
	},
	{
		ID:    "wellness",
		Title: "ECS & Wellness",
		KeyPoints: []string{
			"The ECS helps control pain, inflammation, stress, and sleep",
			"Exercise can boost your endocannabinoid levels naturally",
			"Good nutrition with omega-3 fats supports healthy ECS function",
		},
		Expanded: map[Audience]string{
			AudienceGeneral:    "Your ECS acts like a master controller for wellness. When it works well, you feel more balanced, sleep better, and handle stress more easily.",
			AudienceStudent:    "The ECS regulates homeostasis through multiple pathways: HPA axis modulation for stress, inflammatory regulation via CB2 receptors, and circadian rhythm coordination for sleep-wake cycles.",
			AudienceHealthcare: "Clinical Endocannabinoid Deficiency (CECD) theory suggests ECS dysfunction may contribute to conditions like fibromyalgia, migraine, and IBS. Moderate exercise increases circulating endocannabinoid levels, particularly anandamide.",
		},
		Chart: "wellness",
	},
	{
		ID:    "cognition",
		Title: "ECS & Learning",
		KeyPoints: []string{
			"The ECS is involved in memory formation and learning processes",
			"It helps with neuroplasticity - your brain's ability to change and adapt",
			"The ECS plays a role in attention and focus",
		},
		Expanded: map[Audience]string{
			AudienceGeneral:    "Your ECS helps your brain learn new things and remember important information while forgetting what you don't need. It's like having a smart filing system in your brain.",
			AudienceStudent:    "The ECS modulates synaptic plasticity through LTP and LTD mechanisms. It's directly involved in memory consolidation, extinction learning, and executive function via prefrontal cortex modulation.",
			AudienceHealthcare: "ECS dysfunction may contribute to cognitive disorders. CB1 receptors are highly expressed in hippocampus and cortex. Exercise-induced neuroplasticity is partially mediated through endocannabinoid signaling, particularly in adult neurogenesis.",
		},
		Chart: "cognition",
	},
	{
		ID:    "longevity",
		Title: "ECS & Longevity",
		KeyPoints: []string{
			"The ECS changes as we age, often becoming less effective",
			"It helps fight inflammation that contributes to aging",
			"Supporting your ECS may help with healthy aging",
		},
		Expanded: map[Audience]string{
			AudienceGeneral:    "As you get older, your ECS may not work as well. Taking care of it through good lifestyle choices might help you age more gracefully and stay healthier longer.",
			AudienceStudent:    `Age-related ECS changes include decreased receptor density, altered endocannabinoid production, and reduced enzymatic efficiency. The ECS combats "inflammaging" through CB2-mediated anti-inflammatory pathways.`,
			AudienceHealthcare: "ECS decline correlates with increased inflammatory markers, neurodegeneration risk, and metabolic dysfunction. Therapeutic targeting of CB2 receptors shows promise for age-related diseases. Research indicates ECS modulation may influence longevity pathways including sirtuins and autophagy.",
		},
		Chart: "longevity",
	},
	{
		ID:    "applications",
		Title: "Practical Applications",
		KeyPoints: []string{
			"Assess ECS function through symptoms and lifestyle factors",
			"Support ECS with exercise, nutrition, stress management, and sleep",
			"Different approaches work for different people",
		},
		Expanded: map[Audience]string{
			AudienceGeneral:    "You can support your ECS through simple daily choices: regular exercise, eating well, managing stress, and getting good sleep. Small changes can make a big difference.",
			AudienceStudent:    "ECS assessment involves comprehensive evaluation of sleep, stress, pain, mood, and inflammatory markers. Intervention protocols include targeted nutrition, specific exercise modalities, and botanical supports.",
			AudienceHealthcare: "Clinical applications require individualized assessment considering genetic variations, comorbidities, and medication interactions. Evidence-based protocols integrate lifestyle interventions with potential targeted therapies. Monitor outcomes through validated assessment tools and biomarkers where available.",
		},
		Chart: "applications",
	},
}

// Modules returns the curriculum modules in order.
func Modules() []Module {
	out := make([]Module, len(ecsModules))
	for i, m := range ecsModules {
		m.KeyPoints = append([]string(nil), m.KeyPoints...)
		expanded := make(map[Audience]string, len(m.Expanded))
		for k, v := range m.Expanded {
			expanded[k] = v
		}
		m.Expanded = expanded
		out[i] = m
	}
	return out
}

var ecsPalette = []string{"#8884d8", "#82ca9d", "#ffc658", "#ff7300", "#8dd1e1"}

func ecsCharts() []charts.Chart {
	return []charts.Chart{
		{
			ID:     "foundations",
			Type:   charts.TypePie,
			Labels: charts.Labels("CB1 Brain", "CB2 Immune", "Other Receptors"),
			Datasets: []charts.Dataset{{
				Label:           "Receptor Distribution (%)",
				Data:            []float64{65, 25, 10},
				BackgroundColor: ecsPalette[:3],
			}},
		},
		{
			ID:     "wellness",
			Type:   charts.TypeLine,
			Labels: charts.Labels("Baseline", "Week 2", "Week 4", "Week 6", "Week 8"),
			Datasets: []charts.Dataset{
				{Label: "anandamide", Data: []float64{2.1, 2.3, 2.5, 2.4, 2.6}, BorderColor: ecsPalette[:1]},
				{Label: "exercise", Data: []float64{2.1, 2.8, 3.2, 3.5, 3.8}, BorderColor: ecsPalette[1:2]},
			},
		},
		{
			ID:     "cognition",
			Type:   charts.TypeBar,
			Labels: charts.Labels("Memory Formation", "Learning", "Attention", "Executive Function"),
			Datasets: []charts.Dataset{{
				Label:           "involvement",
				Data:            []float64{85, 78, 65, 72},
				BackgroundColor: ecsPalette[:1],
			}},
		},
		{
			ID:     "longevity",
			Type:   charts.TypeLine,
			Labels: charts.Labels("20-30", "30-40", "40-50", "50-60", "60-70", "70+"),
			Datasets: []charts.Dataset{{
				Label:       "ecsFunction",
				Data:        []float64{100, 95, 85, 75, 65, 55},
				BorderColor: ecsPalette[:1],
			}},
		},
		{
			ID:     "applications",
			Type:   charts.TypeBar,
			Labels: charts.Labels("Exercise", "Nutrition", "Stress Management", "Sleep Optimization", "Botanical Support"),
			Datasets: []charts.Dataset{{
				Label:           "effectiveness",
				Data:            []float64{88, 75, 82, 79, 65},
				BackgroundColor: ecsPalette[1:2],
			}},
		},
	}
}

func moduleSections() []Section {
	sections := make([]Section, len(ecsModules))
	for i, m := range ecsModules {
		sections[i] = Section{
			ID:         m.ID,
			Title:      m.Title,
			Paragraphs: append(append([]string(nil), m.KeyPoints...), m.Expanded[AudienceGeneral]),
			Charts:     []string{m.Chart},
		}
	}
	return sections
}

func audienceOptions() []Option {
	return []Option{
		{string(AudienceGeneral), "General Public"},
		{string(AudienceStudent), "Student"},
		{string(AudienceHealthcare), "Healthcare Professional"},
	}
}

// ECSChatFallbacks are the chat log messages used when no answer arrives.
var ECSChatFallbacks = models.Fallbacks{
	Status:     "Sorry, I could not process that request.",
	Unexpected: "Sorry, I could not process that request.",
	Transport:  "Sorry, there was an error processing your request. Please try again.",
}

var ecsPage = Page{
	Slug:       "endocannabinoid-system-curriculum-infographic",
	Title:      "The Endocannabinoid System",
	Subtitle:   "Your Body's Master Regulatory Network",
	Summary:    "A five-module ECS curriculum tuned for the general public, students or healthcare professionals, with an AI chat tutor.",
	Date:       "July 2, 2025",
	Categories: []string{"Health Tech", "Education", "AI"},
	Kind:       KindChat,
	Sections:   moduleSections(),
	Actions: []Action{{
		ID:           "chat",
		Label:        "Send",
		BusyLabel:    "Thinking…",
		Input:        InputText,
		Placeholder:  "Type your question...",
		EmptyMessage: "Please type a question first.",
		Options:      audienceOptions(),
		Markdown:     true,
		Fallbacks:    ECSChatFallbacks,
	}},
	Charts: ecsCharts(),
	Chat:   true,
}
