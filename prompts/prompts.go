// Package prompts builds the instruction text sent to the model for each
// page action. Builders are pure: same input, same prompt.
package prompts

import (
	"fmt"
	"strings"

	"portfolio/content"
)

// AthleteInsight asks for a one-sentence insight about an ageless athlete.
func AthleteInsight(a content.AgelessAthlete) string {
	return fmt.Sprintf("Based on the story of %s, an athlete known for their achievements in %s and whose journey includes these facts: \"%s\", generate a short, powerful, one-sentence motivational insight about longevity, dedication, or the spirit of lifelong fitness.",
		a.Name, a.Sport, a.Facts)
}

// CentenarianTip asks for a fitness tip themed on resilience when the bio
// mentions it, dedication otherwise.
func CentenarianTip(c content.Centenarian) string {
	theme := "dedication"
	if strings.Contains(c.Bio, "resilience") {
		theme = "resilience"
	}
	return fmt.Sprintf("Based on the inspiring story of %s (%d), who achieved %s and whose life philosophy included themes of %s, generate a short, one-sentence motivational fitness tip.",
		c.Name, c.Age, c.Achievement, theme)
}

// BiographyAnswer restricts the answer to the supplied biography.
func BiographyAnswer(biography, question string) string {
	return fmt.Sprintf(`Based *only* on the following biography of Lester Wright, answer the user's question. If the answer is not in the text, say you don't have that information. Keep the answer concise and to the point.

Biography:
%s

User's Question:
%s

Answer:`, biography, question)
}

// LongevityInsights takes no input.
func LongevityInsights() string {
	return "Provide 3-4 evidence-based insights on factors contributing to longevity and healthy aging, based on scientific research. For each point, cite a peer-reviewed source or a reputable health organization (e.g., a study in 'The Lancet', 'as noted by the World Health Organization'). Frame the response as general information."
}

// HealthQuery answers from vetted sources and ends with the disclaimer.
func HealthQuery(query string) string {
	return fmt.Sprintf(`As an expert researcher, answer the following user query based *only* on information from vetted, peer-reviewed scientific sources and reputable health organizations (like the WHO, NIH, CDC, major universities, or journals like Nature, The Lancet, NEJM).

User Query: "%s"

Your response must:
1.  Be informative and directly answer the user's question.
2.  For each key piece of information, cite the source in parentheses, e.g., (Source: The Lancet, 2023) or (Source: World Health Organization).
3.  Conclude with the following mandatory disclaimer, exactly as written below, separated by a horizontal rule (---).

---
%s`, query, content.HealthDisclaimer())
}

// BenefitExplanation expands one breathing benefit.
func BenefitExplanation(b content.Benefit) string {
	return fmt.Sprintf("Explain in more detail how diaphragmatic breathing contributes to \"%s\". Focus on the physiological mechanisms in an easy-to-understand way for a general audience. Keep the explanation concise, around 2-3 paragraphs. Ensure the output is plain text.",
		b.Title)
}

// PracticePlan asks for a seven day plan for the selected goals.
func PracticePlan(goals []string, minutes string) string {
	return fmt.Sprintf("Create a 7-day diaphragmatic breathing practice plan for a beginner. The user's goals are: %s. Each daily session should be approximately %s minutes long. Suggest specific techniques (like Basic Ratio Breathing, 4-7-8 Breathing, or Box Breathing where appropriate) and structure for each day. Make the plan encouraging and easy to follow. Format the output with Markdown for bolding and lists.",
		strings.Join(goals, ", "), minutes)
}

func audienceDescription(a content.Audience) string {
	switch a {
	case content.AudienceStudent:
		return "students"
	case content.AudienceHealthcare:
		return "healthcare professionals"
	default:
		return "the general public"
	}
}

// ECSQuestion frames a chat message for the selected audience.
func ECSQuestion(audience content.Audience, message string) string {
	return fmt.Sprintf(`You are an expert on the Endocannabinoid System (ECS) helping %s understand this important biological system.
Context: The ECS consists of cannabinoid receptors (CB1 and CB2), endocannabinoids (anandamide and 2-AG), and metabolic enzymes. It regulates homeostasis, wellness, learning, and aging processes.
Please answer this question about the ECS: %s
Respond appropriately for a %s audience with accurate, evidence-based information. Keep responses conversational but scientifically accurate.`,
		audienceDescription(audience), message, audience)
}

// SleepQuery debunks or answers a sleep question for active people.
func SleepQuery(query string) string {
	return fmt.Sprintf("You are a helpful sleep science expert specializing in advice for highly active individuals and athletes. A user has a question or a common myth about sleep. User's query: \"%s\". Provide a concise, evidence-based explanation or debunking based on general sleep science principles (2-4 sentences). If it's a myth, clearly state that and explain why. If it's a question, provide a direct answer. Do not give medical advice, suggest specific products/supplements, or recommend specific sleep durations. Focus on facts and established science. Format the answer as a clear paragraph.",
		query)
}

// GardenPlan builds a humane rabbit management plan for the user's problem.
func GardenPlan(problem string) string {
	return fmt.Sprintf(`You are an expert in humane wildlife management for suburban gardens in the American Midwest, specializing in Eastern Cottontails. A user in Fishers, Indiana, has a problem. Based on the following established principles, generate a friendly, step-by-step action plan formatted in HTML with headings and lists. The plan must ONLY include humane methods.
Principles:
1. Exclusion is most effective (e.g., 2ft tall chicken wire, buried).
2. Habitat modification is good (e.g., removing brush piles, tall weeds near gardens).
3. Repellents are least reliable but can be part of a strategy.
4. Planting rabbit-resistant plants (strong scents like herbs/marigolds; fuzzy textures like lamb's ear; toxic plants like daffodils) is a good long-term strategy.
5. Rabbits favor tender plants (beans, peas, tulips) and bark of young trees.
User's specific problem: "%s"`, problem)
}

// PodcastScript writes a short script segment about one topic.
func PodcastScript(t content.PodcastTopic) string {
	return fmt.Sprintf(`You are the host of a friendly, engaging nature podcast called 'Suburban Wildlife'. Your tone is curious and educational. Based *only* on the following information, write a short, conversational podcast script (about 150-200 words). Format it with HTML paragraphs. Start with a hook to grab the listener's attention and make it sound natural, not like a list.
Topic Information: "%s"`, t.Info)
}

// SleepGeneticsAnswer answers a question in the context of the SIK3 report.
func SleepGeneticsAnswer(question string) string {
	return fmt.Sprintf(`You are a helpful assistant explaining scientific concepts from a report about the genetics of sleep. The user is asking about Natural Short Sleep (NSS), the SIK3 gene, and the SIK3-N783Y mutation. Based on this context, answer the following question clearly and concisely. Question: "%s"`, question)
}

// SleepHypothesis takes no input.
func SleepHypothesis() string {
	return `Based on the understanding that the SIK3-N783Y mutation diminishes SIK3 kinase activity but leads to shorter, more intense sleep (higher delta power), generate one novel, testable research hypothesis. The hypothesis should explore the downstream molecular consequences or potential therapeutic applications. Avoid simply restating known facts. For example, "Hypothesis: Specific inhibition of SIK3's phosphorylation of synaptic protein X will replicate the sleep efficiency gains of the N783Y mutation without impacting global sleep duration."`
}

// StatTranslation explains a dense statistical finding in plain terms.
func StatTranslation(stat string) string {
	return fmt.Sprintf(`Act as a data journalist. Your task is to translate a dense statistical finding into a simple, clear, and accurate explanation for a general audience. Break down each part of the statistic and explain what it means in practical terms.

Statistic to translate: "%s"

Explain the main finding (the effect size), the confidence interval (the range of plausible results), and the p-value (the likelihood of it being a fluke).`, stat)
}

// RiskExplanation contrasts a relative risk with the absolute change.
func RiskExplanation(relative, baseline string) string {
	return fmt.Sprintf(`Act as a public health communicator. Your task is to explain the difference between relative risk and absolute risk in a simple, intuitive way using the provided numbers.

- Relative Risk Statement: "%s"
- Baseline Risk: "%s"

First, calculate the new absolute risk.
Second, explain what this means in practical terms for a population (e.g., for every X people...). Contrast the potentially scary-sounding relative risk with the actual change in absolute numbers.`, relative, baseline)
}

// HeadlineAnalysis compares a headline with the statistic behind it.
func HeadlineAnalysis(headline, stat string) string {
	return fmt.Sprintf(`Act as a sharp media literacy expert. Your job is to deconstruct how a news headline might be misinterpreting or sensationalizing a statistical finding.
- Headline: "%s"
- The Actual Statistic: "%s"
Analyze the language of the headline and compare it to the reality of the statistic. Explain the specific ways it might be misleading (e.g., using relative vs. absolute risk, oversimplification, loaded language). Provide a more accurate, sober headline.`, headline, stat)
}

// FlawExplanation grades a guess at the flaw of a data scenario.
func FlawExplanation(s content.Scenario, guess string) string {
	return fmt.Sprintf(`You are an expert in research methodology. A user is learning to spot flaws in how data is collected or presented.
- The Scenario: "%s"
- The User's Guess: "%s"
- The Correct Flaw: "%s"
Provide a concise explanation. First, state if the user's guess is correct or on the right track. Then, clearly explain the primary flaw in the scenario, why it's a problem, and what a critical thinker should ask.`, s.Text, guess, s.Answer)
}

// ScienceSimplification rewrites scientific text for anyone.
func ScienceSimplification(text string) string {
	return fmt.Sprintf("You are a friendly and brilliant science communicator. Your goal is to make complex scientific text easy for anyone to understand. Do not be condescending. Explain the concepts simply, use analogies, and focus on the 'so what?'. Break down this text:\n\n---\n%s\n---", text)
}

// BiasExplanation grades a guess at the bias of a reported scenario.
func BiasExplanation(s content.Scenario, guess string) string {
	return fmt.Sprintf(`You are a helpful expert in research methods and logical fallacies. A user is learning to spot bias in scientific reporting.
The reported scenario is: "%s"
The user guessed the bias is: "%s"
The likely correct bias is: "%s"
Please provide a concise and clear explanation. Start by confirming if the user's guess was on the right track or not. Then, explain what the primary bias or fallacy is in the scenario, why it's misleading, and what a critical reader should look for. Keep it simple and educational.`, s.Text, guess, s.Answer)
}

// CorvidSummary writes a short infographic blurb for a species. The brief
// form omits size, wingspan and flight style.
func CorvidSummary(c content.Corvid, brief bool) string {
	if brief {
		return fmt.Sprintf(`Based on the following data for the corvid species "%s", generate a concise, engaging summary (2-3 sentences) suitable for an infographic. Highlight its most distinctive characteristics.
Data:
- Mass: %dg
- Habitat: %s
- Key Features: %s, %s.`, c.Species, c.MassGrams, c.Habitat, c.Vocalization, c.SocialBehavior)
	}
	return fmt.Sprintf(`Based on the following data for the corvid species "%s", generate a concise, engaging summary (2-3 sentences) suitable for an infographic.
- Mass: %dg
- Size: %dcm
- Wingspan: %dcm
- Habitat: %s
- Key Features: %s, %s, %s.
Highlight its most distinctive characteristics.`,
		c.Species, c.MassGrams, c.SizeCm, c.WingspanCm, c.Habitat, c.Vocalization, c.SocialBehavior, c.FlightStyle)
}

// MythDebunk explains why a corvid myth is untrue.
func MythDebunk(m content.Myth) string {
	return fmt.Sprintf(`Explain in a clear and engaging way why the following common myth about corvids is not true: "%s". Focus on the scientific facts and cultural context. Keep it concise (3-4 sentences).`, m.Title)
}

// CurioLore gives a respectful folkloric note on a Hoodoo curio.
func CurioLore(c content.Curio) string {
	return fmt.Sprintf(`You are a respectful assistant knowledgeable about folklore. Provide a short (2-3 sentences) folkloric insight or symbolic meaning for the Hoodoo curio "%s", which is used for "%s". Frame the response as informative and respectful of Hoodoo as a closed, ancestral practice of the African Diaspora.`, c.Name, c.Uses)
}

// SymbolicInspiration offers reflective correspondences, never instructions.
func SymbolicInspiration(intention string) string {
	return fmt.Sprintf(`A user is looking for inspiration related to the intention: "%s". As a respectful AI, suggest a few symbolic concepts or correspondences from the conceptual framework of Hoodoo folk magic. Do not give spells or instructions. Focus on reflective inspiration (e.g., 'To represent this, one might reflect on elements that symbolize...' or 'Concepts of... might be relevant'). Keep it brief (2-4 sentences). Emphasize this is for personal reflection and that Hoodoo is a closed, ancestral practice of the African Diaspora.`, intention)
}

// TraditionProverb asks for an original proverb in a tradition's spirit.
func TraditionProverb(t content.Tradition) string {
	return fmt.Sprintf(`Based on the core ideas of the %s, generate one short, insightful proverb that reflects this tradition's worldview. The proverb should sound authentic but be an original creation. Example format: "The river that forgets its source will soon run dry."`, t.Context)
}

// TraditionReflection asks for an open question on a tradition's values.
func TraditionReflection(t content.Tradition) string {
	return fmt.Sprintf(`Based on the core ideas of the %s, generate one thought-provoking, open-ended question for personal reflection. The question should encourage deep thinking about the tradition's values. Example format: "How does the idea of a personal destiny (Ori) influence your view of life's challenges?"`, t.Context)
}

// HairBeliefAnswer answers a question grounded in one culture's beliefs.
func HairBeliefAnswer(c content.HairCulture, question string) string {
	return fmt.Sprintf("Based on the following information about %s's beliefs regarding hair:\n\nBeliefs: %s\nReasons for Disposal: %s\n\nPlease answer the user's question: \"%s\"\n\nProvide a concise and informative answer, drawing upon the provided context and your general knowledge of related cultural practices.",
		c.Name, c.Beliefs, c.Reasons, question)
}
