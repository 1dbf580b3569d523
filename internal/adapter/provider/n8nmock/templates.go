package n8nmock

import (
	"math/rand/v2"
	"strings"

	"github.com/mkravets/contentangle-backend/internal/domain"
)

type angleTemplate struct {
	Header      string `json:"header"`
	Description string `json:"description"`
	Tonality    string `json:"tonality"`
	Objective   string `json:"objective"`
}

type ideaTemplate struct {
	Topic       string `json:"topic"`
	Description string `json:"description"`
	ImagePrompt string `json:"imagePrompt"`
}

var angleTemplates = []angleTemplate{
	{
		Header:      "Behind the Craft",
		Description: "Show the unpolished process behind what the brand ships: drafts, dead ends, decisions.",
		Tonality:    "Candid and self-aware",
		Objective:   "Build trust by making the work visible instead of only the result",
	},
	{
		Header:      "Customer Spotlights",
		Description: "Let real customers of the brand tell their story in their own words.",
		Tonality:    "Warm and specific",
		Objective:   "Shift proof from claims to lived outcomes",
	},
	{
		Header:      "Contrarian Takes",
		Description: "Challenge one industry default per post and explain what the brand does instead.",
		Tonality:    "Confident, lightly provocative",
		Objective:   "Position the brand as an opinionated expert rather than a follower",
	},
	{
		Header:      "Numbers That Matter",
		Description: "One metric per post, with the context that makes it meaningful for the brand.",
		Tonality:    "Precise and calm",
		Objective:   "Earn credibility with evidence instead of adjectives",
	},
	{
		Header:      "Teach One Thing",
		Description: "Short, actionable lessons from the brand's domain a reader can apply today.",
		Tonality:    "Generous and practical",
		Objective:   "Become the account people save and share for usefulness",
	},
	{
		Header:      "Founder Notes",
		Description: "First-person reflections on building the brand: bets, mistakes, small wins.",
		Tonality:    "Honest and reflective",
		Objective:   "Give the brand a human voice people can follow over time",
	},
	{
		Header:      "Myth vs Reality",
		Description: "Take a common belief in the space and test it against what the brand actually sees.",
		Tonality:    "Curious, evidence-first",
		Objective:   "Reframe the market narrative around verifiable experience",
	},
	{
		Header:      "Week in Review",
		Description: "A recurring digest of what changed for the brand and its customers this week.",
		Tonality:    "Brisk and structured",
		Objective:   "Create a habit-forming cadence readers come back for",
	},
}

var ideaTemplates = map[domain.Platform][]ideaTemplate{
	domain.PlatformTwitter: {
		{
			Topic:       "The mistake everyone makes with Brand's category",
			Description: "A short thread opening with the mistake, closing with the fix.",
			ImagePrompt: "minimal chart showing a before/after comparison, flat design",
		},
		{
			Topic:       "One-sentence case study",
			Description: "Single tweet: customer, problem, result, nothing else.",
			ImagePrompt: "clean quote card on a neutral background",
		},
		{
			Topic:       "What we shipped this week",
			Description: "Bullet thread of concrete changes with one line of why per item.",
			ImagePrompt: "screenshot collage of product updates, bright accent color",
		},
		{
			Topic:       "Hot take: the default tool is wrong",
			Description: "A contrarian claim plus the two strongest reasons, invite replies.",
			ImagePrompt: "bold typographic statement on a dark background",
		},
		{
			Topic:       "Numbers from last month",
			Description: "Three metrics, each with a one-line story behind it.",
			ImagePrompt: "dashboard-style data visualization with three panels",
		},
		{
			Topic:       "How Brand does onboarding",
			Description: "Step-by-step thread with a screenshot per step.",
			ImagePrompt: "sequence of annotated product screenshots",
		},
		{
			Topic:       "Ask the audience",
			Description: "One sharp question about a daily workflow pain point.",
			ImagePrompt: "simple poll illustration with two hands choosing options",
		},
		{
			Topic:       "Before Brand / after Brand",
			Description: "Two-column contrast of a workflow without and with the product.",
			ImagePrompt: "split-screen illustration, messy desk versus tidy desk",
		},
		{
			Topic:       "The tiny feature nobody markets",
			Description: "Spotlight one small capability and the niche problem it kills.",
			ImagePrompt: "macro shot style illustration of a small mechanical part shining",
		},
		{
			Topic:       "What we got wrong",
			Description: "An honest post about a wrong assumption and what replaced it.",
			ImagePrompt: "crossed-out sketch next to a corrected diagram",
		},
	},
	domain.PlatformLinkedIn: {
		{
			Topic:       "Lessons from Brand's latest customer rollout",
			Description: "Narrative post: context, friction, resolution, takeaway for peers.",
			ImagePrompt: "professional team collaborating around a table, natural light",
		},
		{
			Topic:       "The hiring lesson we learned the hard way",
			Description: "Story-driven post ending with a checklist other founders can use.",
			ImagePrompt: "two chairs facing each other in a bright office",
		},
		{
			Topic:       "Industry benchmark breakdown",
			Description: "Analytical post comparing public numbers with the brand's observations.",
			ImagePrompt: "business analytics chart with highlighted outlier, corporate style",
		},
		{
			Topic:       "Why we said no to a big customer",
			Description: "Values-forward decision story with the principle spelled out.",
			ImagePrompt: "fork in a road, clean editorial photography style",
		},
		{
			Topic:       "A week inside Brand's support queue",
			Description: "What the tickets reveal about the market, with anonymized patterns.",
			ImagePrompt: "organized inbox visualization with category tags",
		},
		{
			Topic:       "The process doc we use for launches",
			Description: "Give away the actual template and annotate the non-obvious parts.",
			ImagePrompt: "document template flat lay with sticky notes",
		},
		{
			Topic:       "What our churned customers taught us",
			Description: "Three churn reasons, three changes made, one metric that moved.",
			ImagePrompt: "revolving door in a glass office lobby, editorial tone",
		},
		{
			Topic:       "Building in a regulated space",
			Description: "Practical post about constraints as a design input, not an obstacle.",
			ImagePrompt: "blueprint with compliance stamps, studio lighting",
		},
		{
			Topic:       "The meeting we deleted",
			Description: "Operational post on removing a ritual and what replaced it.",
			ImagePrompt: "empty conference room with chairs stacked",
		},
		{
			Topic:       "Quarterly retro, published",
			Description: "Transparent retro: what worked, what did not, next quarter's bets.",
			ImagePrompt: "quarterly planning board with magnets and columns",
		},
	},
	domain.PlatformNewsletter: {
		{
			Topic:       "The deep dive: one problem, fully mapped",
			Description: "Long-form issue tracing a single customer problem end to end.",
			ImagePrompt: "detailed topographic map illustration with a marked route",
		},
		{
			Topic:       "Five links worth your time",
			Description: "Curated issue with one paragraph of commentary per link.",
			ImagePrompt: "newsletter guide layout with numbered sections, warm palette",
		},
		{
			Topic:       "Reader Q&A",
			Description: "Answer the three best questions from replies in depth.",
			ImagePrompt: "stack of opened letters on a wooden desk",
		},
		{
			Topic:       "Issue from the archive, updated",
			Description: "Revisit a popular past issue and annotate what changed since.",
			ImagePrompt: "old document with fresh margin notes in red",
		},
		{
			Topic:       "The teardown",
			Description: "Respectful teardown of a public example from the brand's industry.",
			ImagePrompt: "exploded-view technical diagram of a product",
		},
		{
			Topic:       "A guide to getting started",
			Description: "Education-first issue for new subscribers, zero product pitch.",
			ImagePrompt: "open education guide with bookmarks and highlights",
		},
		{
			Topic:       "What we changed this month",
			Description: "Changelog issue with the reasoning behind each change.",
			ImagePrompt: "calendar page with annotated milestones",
		},
		{
			Topic:       "Interview issue",
			Description: "Conversation with a practitioner the audience respects.",
			ImagePrompt: "two coffee cups and a recorder on a table",
		},
		{
			Topic:       "The checklist issue",
			Description: "One printable checklist plus the thinking behind every item.",
			ImagePrompt: "clipboard with a crisp checklist, flat design",
		},
		{
			Topic:       "Behind the numbers",
			Description: "Open metrics issue: subscriber count, open rates, honest commentary.",
			ImagePrompt: "hand-drawn growth chart pinned to a corkboard",
		},
	},
}

var contentTemplates = map[domain.Platform][]string{
	domain.PlatformTwitter: {
		"Most teams get this backwards.\n\nThey polish the announcement and neglect the product.\n\nAt [Brand Name] we flipped it: ship quietly, let the work announce itself.\n\nResult: our best customers found us through other customers.",
		"We tracked every support ticket for 30 days.\n\n61% traced back to one onboarding screen.\n\nWe rewrote it in an afternoon. Tickets dropped by half.\n\nSmall surfaces, big leverage.",
		"Unpopular opinion: your roadmap is too long.\n\nWe keep [Brand Name]'s to five items.\n\nAnything that can't displace one of the five isn't important enough yet.",
	},
	domain.PlatformLinkedIn: {
		"Last quarter we lost a deal we should have won.\n\nThe prospect chose a competitor with fewer features and a higher price. When I asked why, the answer was uncomfortable: \"They explained our problem better than we could.\"\n\nAt [Brand Name] we've since rebuilt how we talk about the product — starting from the customer's words, not ours.\n\nThree changes that made the difference:\n1. Discovery notes are now written in the customer's vocabulary\n2. Every proposal opens with their problem statement, verbatim\n3. Demos follow their workflow, not our feature list\n\nThe lesson: clarity about someone's problem is a feature. Maybe the feature.",
		"We published our internal launch checklist today.\n\nNot because it's perfect — because keeping it private wasn't helping anyone, including us. Within hours of sharing it, two readers pointed out steps we'd been missing.\n\n[Brand Name] gets better when we work in the open. The checklist is in the comments.",
	},
	domain.PlatformNewsletter: {
		"Welcome to this week's issue.\n\nOne thing we keep relearning at [Brand Name]: the problems customers describe are rarely the problems they have. A reader wrote in asking how to speed up their reporting pipeline. Four emails later, the real issue surfaced — nobody trusted the numbers, so every report triggered a manual audit.\n\nThis issue is about that gap. How to hear the stated problem, find the underlying one, and decide which one to solve first.\n\nLet's get into it.",
		"This month's changelog issue.\n\nWhat shipped, what slipped, and why — the honest version.\n\nShipped: the two most-requested fixes from the last survey. Slipped: the integration we promised in March; the vendor API turned out to be less finished than its docs. We'd rather be late than flaky.\n\nAs always, reply with what you'd like prioritized. We read everything.",
	},
}

// autofillFor derives plausible strategy fields from the website domain,
// keyed deterministically so repeated autofills agree.
func autofillFor(website string) struct {
	TargetAudience string `json:"targetAudience"`
	BrandTone      string `json:"brandTone"`
	KeyOffer       string `json:"keyOffer"`
} {
	profiles := []struct {
		TargetAudience string `json:"targetAudience"`
		BrandTone      string `json:"brandTone"`
		KeyOffer       string `json:"keyOffer"`
	}{
		{
			TargetAudience: "Small business owners and operators who handle their own marketing",
			BrandTone:      "Practical, plainspoken, quietly confident",
			KeyOffer:       "Done-for-you output without agency overhead",
		},
		{
			TargetAudience: "Product and engineering leaders at growth-stage companies",
			BrandTone:      "Technical, precise, evidence-driven",
			KeyOffer:       "Faster decisions backed by real usage data",
		},
		{
			TargetAudience: "Independent creators building an audience around their expertise",
			BrandTone:      "Warm, encouraging, direct",
			KeyOffer:       "A repeatable system instead of one-off inspiration",
		},
	}

	var sum int
	for _, c := range strings.ToLower(website) {
		sum += int(c)
	}
	return profiles[sum%len(profiles)]
}

func pickAngles(n int) []angleTemplate {
	idx := shuffledPrefix(len(angleTemplates), n)
	out := make([]angleTemplate, n)
	for i, j := range idx {
		out[i] = angleTemplates[j]
	}
	return out
}

func pickIdeas(platform domain.Platform, n int) []ideaTemplate {
	pool := ideaTemplates[platform]
	idx := shuffledPrefix(len(pool), n)
	out := make([]ideaTemplate, n)
	for i, j := range idx {
		out[i] = pool[j]
	}
	return out
}

func pickContent(platform domain.Platform) string {
	pool := contentTemplates[platform]
	return pool[rand.IntN(len(pool))]
}

// imageURLFor maps prompt keywords to stable stock image URLs.
func imageURLFor(prompt string) string {
	keywords := strings.ToLower(prompt)

	switch {
	case strings.Contains(keywords, "chart"), strings.Contains(keywords, "graph"), strings.Contains(keywords, "data"):
		return "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=800&h=600&fit=crop"
	case strings.Contains(keywords, "team"), strings.Contains(keywords, "collaboration"):
		return "https://images.unsplash.com/photo-1522071820081-009f0129c71c?w=800&h=600&fit=crop"
	case strings.Contains(keywords, "technology"), strings.Contains(keywords, "ai"), strings.Contains(keywords, "future"):
		return "https://images.unsplash.com/photo-1518709268805-4e9042af2176?w=800&h=600&fit=crop"
	case strings.Contains(keywords, "business"), strings.Contains(keywords, "office"), strings.Contains(keywords, "professional"):
		return "https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=800&h=600&fit=crop"
	case strings.Contains(keywords, "newsletter"), strings.Contains(keywords, "guide"), strings.Contains(keywords, "education"):
		return "https://images.unsplash.com/photo-1586953208448-b95a79798f07?w=800&h=600&fit=crop"
	default:
		return "https://images.unsplash.com/photo-1551434678-e076c223a692?w=800&h=600&fit=crop"
	}
}
