package icons

// Collection identifiers. They double as the embedded directory names under
// svg/.
const (
	CollectionArchetypes = "archetypes"
	CollectionGreenEmber = "green_ember"
	CollectionMeta       = "meta"
)

// Definition describes one icon entry.
type Definition struct {
	ID          string
	Name        string
	Description string
	Visual      string
	Prop        string
	Traits      Traits
	// Members is the number of icons in the collection a meta icon stands
	// for. It is zero for every other icon.
	Members int
}

const (
	lo = LevelLow
	md = LevelMedium
	hi = LevelHigh
)

var archetypeDefinitions = []Definition{
	{
		ID:     "architect",
		Name:   "The Architect",
		Visual: "Hunched over blueprint, compass tool, cool tones",
		Prop:   "Drafting compass drawing on blueprint",
		Traits: scores(lo, hi, lo, lo, hi),
	},
	{
		ID:     "commander",
		Name:   "The Commander",
		Visual: "Upright posture, pointing forward, directive gesture",
		Prop:   "Pointing arm, command presence, strategic display",
		Traits: scores(lo, hi, hi, lo, md),
	},
	{
		ID:     "mediator",
		Name:   "The Mediator",
		Visual: "Gentle posture, warm tones, peaceful symbols",
		Prop:   "Olive branch or balance scales, soft gestures",
		Traits: scores(hi, md, lo, md, hi),
	},
	{
		ID:     "performer",
		Name:   "The Performer",
		Visual: "Dynamic pose, spotlight, theatrical energy",
		Prop:   "Stage spotlight, expressive gesture, microphone",
		Traits: scores(md, lo, hi, md, hi),
	},
	{
		ID:     "analyst",
		Name:   "The Analyst",
		Visual: "Focused, methodical, examining data",
		Prop:   "Magnifying glass, data chart, precise elements",
		Traits: scores(md, hi, lo, lo, lo),
	},
	{
		ID:     "caregiver",
		Name:   "The Caregiver",
		Visual: "Warm, supportive posture, nurturing gesture",
		Prop:   "Heart symbol, open hands, protective stance",
		Traits: scores(hi, hi, md, lo, md),
	},
	{
		ID:     "adventurer",
		Name:   "The Adventurer",
		Visual: "Dynamic, forward-leaning, explorer energy",
		Prop:   "Compass, map, horizon/mountain vista",
		Traits: scores(lo, lo, hi, lo, hi),
	},
	{
		ID:          "stoic",
		Name:        "The Stoic",
		Description: "Same profile as the Analyst, set apart by the stoic philosophy theme.",
		Visual:      "Calm, centered, minimal elements",
		Prop:        "Pillar/column, meditative stillness",
		Traits:      scores(md, hi, lo, lo, lo),
	},
	{
		ID:     "diplomat",
		Name:   "The Diplomat",
		Visual: "Poised, connecting gesture, bridge imagery",
		Prop:   "Handshake, bridge symbol, dual connection",
		Traits: scores(hi, hi, hi, lo, md),
	},
	{
		ID:     "rebel",
		Name:   "The Rebel",
		Visual: "Defiant posture, breaking convention",
		Prop:   "Raised fist, broken chain, disruption symbol",
		Traits: scores(lo, lo, hi, md, hi),
	},
	{
		ID:     "scholar",
		Name:   "The Scholar",
		Visual: "Absorbed in learning, surrounded by knowledge",
		Prop:   "Open book, stack of books, reading posture",
		Traits: scores(md, hi, lo, md, hi),
	},
	{
		ID:     "healer",
		Name:   "The Healer",
		Visual: "Gentle, empathetic presence, healing symbols",
		Prop:   "Herbs/plant, gentle hands, soft glow",
		Traits: scores(hi, md, lo, hi, hi),
	},
	{
		ID:     "entrepreneur",
		Name:   "The Entrepreneur",
		Visual: "Forward momentum, opportunity-seeking",
		Prop:   "Lightbulb (ideas), rocket, growth chart",
		Traits: scores(lo, md, hi, lo, hi),
	},
	{
		ID:     "sentinel",
		Name:   "The Sentinel",
		Visual: "Watchful, protective stance, vigilant",
		Prop:   "Shield, watchtower, guarding posture",
		Traits: scores(hi, hi, lo, md, lo),
	},
	{
		ID:     "maverick",
		Name:   "The Maverick",
		Visual: "Independent, unconventional, unique path",
		Prop:   "Diverging path, star, solo journey",
		Traits: scores(lo, lo, md, lo, hi),
	},
	{
		ID:     "host",
		Name:   "The Host",
		Visual: "Welcoming, gathering others, warm presence",
		Prop:   "Open door, gathering table, welcoming gesture",
		Traits: scores(hi, md, hi, lo, md),
	},
	{
		ID:     "critic",
		Name:   "The Critic",
		Visual: "Scrutinizing, evaluating, precise assessment",
		Prop:   "Red pen, checklist, evaluative gaze",
		Traits: scores(lo, hi, lo, md, md),
	},
	{
		ID:     "dreamer",
		Name:   "The Dreamer",
		Visual: "Contemplative, gazing upward, imaginative",
		Prop:   "Clouds, stars, thought bubbles",
		Traits: scores(md, lo, lo, md, hi),
	},
	{
		ID:     "warrior",
		Name:   "The Warrior",
		Visual: "Aggressive, competitive, directed energy",
		Prop:   "Sword, target, battle-ready stance",
		Traits: scores(lo, hi, hi, lo, lo),
	},
	{
		ID:     "sage",
		Name:   "The Sage",
		Visual: "Wise, calm, illuminating presence",
		Prop:   "Lantern, scroll, contemplative posture",
		Traits: scores(hi, md, lo, lo, hi),
	},
	{
		ID:          "cipher",
		Name:        "The Cipher",
		Description: "Profiles that do not map to a defined archetype.",
		Visual:      "Overlapping geometric shapes suggesting multiple possibilities",
		Prop:        "Circle, square, triangle - the basic forms, unresolved",
	},
}

var greenEmberDefinitions = []Definition{
	{
		ID:          "heather",
		Name:        "Heather Longtreader",
		Description: "Compassionate healer-in-training, dedicated, curious, worries but copes",
		Prop:        "Healing herbs/satchel",
		Traits:      scores(4, 4, 3, 3, 4),
	},
	{
		ID:          "picket",
		Name:        "Picket Longtreader",
		Description: "Disciplined fighter, struggles with anger/resentment, inward-focused",
		Prop:        "Sword, target/combat stance",
		Traits:      scores(2, 4, 2, 5, 3),
	},
	{
		ID:          "smalls",
		Name:        "Smalls",
		Description: "Servant-hearted, humble, kind, duty-bound, wise big-picture thinker",
		Prop:        "Crown (modest), green ember glow",
		Traits:      scores(5, 4, 3, 2, 4),
	},
	{
		ID:          "helmer",
		Name:        "Helmer",
		Description: "Gruff mentor, extremely disciplined, emotionally reserved, traditional",
		Prop:        "Training sword, pillar/discipline",
		Traits:      scores(2, 5, 2, 2, 2),
	},
	{
		ID:          "rake",
		Name:        "Lord Rake",
		Description: "Tough but fair, strategic organizer, charismatic leader, steady under fire",
		Prop:        "Battle standard, strategic map",
		Traits:      scores(3, 5, 4, 2, 3),
	},
	{
		ID:          "emma",
		Name:        "Emma",
		Description: "Nurturing, warm, reliable, emotionally stable, calming presence",
		Prop:        "Comforting gesture, heart/home symbol",
		Traits:      scores(5, 4, 3, 2, 3),
	},
	{
		ID:          "kyle",
		Name:        "Kyle",
		Description: "Friendly, eager, impulsive/reckless, energetic, curious adventurer",
		Prop:        "Map, distant horizon",
		Traits:      scores(4, 2, 4, 3, 4),
	},
	{
		ID:          "jo",
		Name:        "Jo Shanks",
		Description: "Independent, lone operator, cool under pressure, creative/unorthodox",
		Prop:        "Bow, diverging path/star",
		Traits:      scores(3, 3, 2, 2, 4),
	},
	{
		ID:          "frye",
		Name:        "Captain Frye",
		Description: "Loyal, dutiful, follows protocol, steady, traditional/by-the-book",
		Prop:        "Ship wheel, shield",
		Traits:      scores(4, 5, 3, 2, 2),
	},
	{
		ID:          "wilfred",
		Name:        "Wilfred Longtreader",
		Description: "Loving father, meticulous planner, works in shadows, long-term visionary",
		Prop:        "Blueprint/plans, compass",
		Traits:      scores(4, 5, 2, 3, 4),
	},
	{
		ID:          "morbin",
		Name:        "Morbin Blackhawk",
		Description: "Cruel, dominating, organized tyranny, commands presence, coldly controlled",
		Visual:      "Raptor silhouette instead of the rabbit profile",
		Prop:        "Crown of thorns, dark wings",
		Traits:      scores(1, 4, 4, 2, 3),
	},
	{
		ID:          "redeye",
		Name:        "Redeye Garlackson",
		Description: "Treacherous, self-serving, charming when needed, paranoid, narrow focus",
		Prop:        "Broken emblem, shadow/mask",
		Traits:      scores(1, 3, 3, 4, 2),
	},
}

var metaDefinitions = []Definition{
	{
		ID:          "archetypes",
		Name:        "Generic Archetypes",
		Description: "Represents the personality archetype system",
		Visual:      "Multiple overlapping silhouettes suggesting variety of types",
		Members:     21,
	},
	{
		ID:          "greenEmber",
		Name:        "Green Ember",
		Description: "Represents the Green Ember character collection",
		Visual:      "Glowing green ember with rabbit ear silhouette",
		Members:     12,
	},
	{
		ID:          "greekMythology",
		Name:        "Greek Mythology",
		Description: "Represents the Greek Mythology character collection",
		Visual:      "Lightning bolt (Zeus), trident (Poseidon), Greek column hints",
		Members:     64,
	},
	{
		ID:          "norseMythology",
		Name:        "Norse Mythology",
		Description: "Represents the Norse Mythology character collection",
		Visual:      "Thor's hammer, Odin's ravens, rune hint",
		Members:     20,
	},
	{
		ID:          "romanMythology",
		Name:        "Roman Mythology",
		Description: "Represents the Roman Mythology character collection",
		Visual:      "SPQR eagle, laurel wreath, Roman columns",
		Members:     47,
	},
}
