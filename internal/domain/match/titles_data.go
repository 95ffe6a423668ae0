package match

import "github.com/MeebitForge/MeebitStudio/server/internal/domain/trait"

// Several phrase variants per trait value keep a batch of titles from
// collapsing onto the same string; the variant is picked by token id.

var typeAdjectives = map[trait.Type][]string{
	trait.TypeRobot:     {"Calculated", "Wired", "Chrome", "Binary", "Synthetic", "Algorithmic", "Neon-lit", "Overclocked"},
	trait.TypeSkeleton:  {"Midnight", "Hollow", "Ancient", "Spectral", "Bare-bones", "Timeless", "Undying", "Faded"},
	trait.TypeVisitor:   {"Cosmic", "Otherworldly", "Astral", "Nebula", "Starborn", "Alien", "Interdimensional", "Lunar"},
	trait.TypeElephant:  {"Gentle", "Towering", "Mighty", "Stoic", "Regal", "Thundering", "Noble", "Grand"},
	trait.TypePig:       {"Bold", "Brazen", "Untamed", "Fearless", "Wild-hearted", "Fiery", "Spirited", "Daring"},
	trait.TypeDissected: {"Enigmatic", "Layered", "Transparent", "Deconstructed", "Exposed", "Unveiled", "Inner", "Raw"},
	trait.TypeHuman:     {"Classic", "Everyday", "Timeless", "Golden", "Natural", "Authentic", "Real", "Grounded"},
}

var glassesAdjectives = map[string][]string{
	"Sunglasses":    {"Mysterious", "Shielded", "Incognito", "Covert"},
	"Aviators":      {"Daring", "Top-Gun", "High-flying", "Fearless"},
	"3D":            {"Digital", "Glitched", "Pixelated", "Virtual"},
	"Round Glasses": {"Thoughtful", "Curious", "Bookish", "Scholarly"},
	"Nerdy":         {"Sharp", "Clever", "Quick-witted", "Brainy"},
	"Elvis":         {"Retro", "Vintage", "Throwback", "Old-school"},
	"Specs":         {"Studious", "Focused", "Analytical", "Precise"},
	"Frameless":     {"Refined", "Sleek", "Understated", "Polished"},
}

var overshirtAdjectives = map[string][]string{
	"Leather Jacket":  {"Rebel", "Untouchable", "Road-worn", "Defiant"},
	"Trenchcoat":      {"Suave", "Shadowy", "Film-noir", "Elusive"},
	"Jean Jacket":     {"Free-spirited", "Dusty", "Roaming", "Faded"},
	"Athletic Jacket": {"Dynamic", "Driven", "Energized", "Swift"},
	"Collar Shirt":    {"Polished", "Buttoned-up", "Crisp", "Distinguished"},
}

var hatAdjectives = map[string][]string{
	"Headphones":    {"Sonic", "Tuned-in", "Bassline", "Frequency"},
	"Bandana":       {"Rugged", "Gritty", "Outlaw", "Weathered"},
	"Wool Hat":      {"Wandering", "Nomadic", "Cozy", "Chill"},
	"Brimmed":       {"Shaded", "Noir", "Dapper", "Wide-brimmed"},
	"Cap":           {"Street", "Downtown", "Urban", "Fresh"},
	"Backwards Cap": {"Laid-back", "Carefree", "Easygoing", "Chill"},
	"Trucker Cap":   {"Roadside", "Highway", "Open-road", "Country"},
	"Snoutz Cap":    {"Underground", "Rare", "Collector's", "Exclusive"},
}

var hairAdjectives = map[string][]string{
	"Mohawk":   {"Punk", "Defiant", "Electric", "Razor-edged"},
	"Wild":     {"Untamed", "Feral", "Windswept", "Chaotic"},
	"Spiky":    {"Edgy", "Charged", "Wired", "Jagged"},
	"Messy":    {"Bedhead", "Effortless", "Careless", "Reckless"},
	"Bald":     {"Clean", "Streamlined", "Bare", "Stripped-down"},
	"Buzzcut":  {"Military", "Tight", "No-nonsense", "Disciplined"},
	"Bun":      {"Zen", "Centered", "Poised", "Composed"},
	"Pigtails": {"Playful", "Spirited", "Peppy", "Bouncy"},
}

var beardAdjectives = map[string][]string{
	"Full":           {"Bearded", "Lumberjack", "Burly", "Seasoned"},
	"Big":            {"Grizzled", "Mighty-bearded", "Mountain-man", "Bearish"},
	"Stubble":        {"Scruffy", "Five-o'clock", "Rough-cut", "Rugged"},
	"Mustache":       {"Dapper", "Old-timey", "Handlebar", "Debonair"},
	"Biker Mustache": {"Iron-steed", "Road-warrior", "Chrome", "Outlaw"},
	"Muttonchops":    {"Victorian", "Sideburned", "Period-piece", "Olde"},
	"Medical Mask":   {"Masked", "Anonymous", "Hidden", "Veiled"},
}

var shirtNouns = map[string][]string{
	"Hoodie":            {"Dreamer", "Drifter", "Night Owl", "Homebody"},
	"Oversized Hoodie":  {"Lounger", "Couch King", "Comfort Seeker", "Hibernator"},
	"Hoodie Up":         {"Shadow", "Phantom", "Ghost", "Lurker"},
	"Skull Tee":         {"Rebel", "Renegade", "Dark Horse", "Outcast"},
	"Punk Tee":          {"Anarchist", "Disruptor", "Provocateur", "Agitator"},
	"Invader Tee":       {"Gamer", "Pixel Warrior", "Arcade Rat", "High Scorer"},
	"Ghost Tee":         {"Phantom", "Specter", "Wraith", "Haunt"},
	"Suit":              {"Executive", "Power Broker", "Kingpin", "Strategist"},
	"Suit Jacket":       {"Boss", "Commander", "Director", "Mogul"},
	"Tee":               {"Original", "Purist", "Everyday Hero", "Blank Slate"},
	"Logo Tee":          {"Influencer", "Brand Ambassador", "Hype Beast", "Tastemaker"},
	"Hawaiian":          {"Nomad", "Island Hopper", "Beach Bum", "Wanderer"},
	"Tie-dyed Tee":      {"Artist", "Free Soul", "Cosmic Painter", "Psychonaut"},
	"Flamingo Tee":      {"Dreamer", "Tropicalist", "Sunset Chaser", "Flamingo Kid"},
	"Basketball Jersey": {"Champion", "Baller", "Court King", "All-Star"},
	"Jersey":            {"Athlete", "Team Captain", "Competitor", "Contender"},
	"Classic Jersey":    {"MVP", "Franchise Player", "Legend", "Hall of Famer"},
	"Windbreaker":       {"Explorer", "Storm Chaser", "Trailblazer", "Pathfinder"},
	"Long-sleeved":      {"Thinker", "Philosopher", "Observer", "Deep Diver"},
	"Bare Chest":        {"Titan", "Gladiator", "Brawler", "Force of Nature"},
	"Heart Hoodie":      {"Romantic", "Softie", "Lover", "Heartfelt"},
	"Heart Tee":         {"Romantic", "Sweetheart", "Tender Soul", "Lovebird"},
	"CGA Shirt":         {"Pixel Pioneer", "Retro Coder", "Old-school Hacker", "8-Bit Legend"},
	"Meepet Tee":        {"Collector", "Curator", "Archivist", "Keeper"},
	"Halter Top":        {"Trendsetter", "Scene Stealer", "Head Turner", "Fashion Icon"},
	"Tube Top":          {"Showstopper", "Spotlight Lover", "Diva", "Star"},
	"Diagonal Tee":      {"Maverick", "Off-center", "Sidewinder", "Nonconformist"},
	"Lines":             {"Minimalist", "Clean Liner", "Purist", "Simplicity Seeker"},
	"Stylized Hoodie":   {"Visionary", "Futurist", "Avant-Gardist", "Trailblazer"},
	"Snoutz Tee":        {"Insider", "OG", "Inner Circle", "Core Member"},
	"Snoutz Hoodie":     {"Insider", "Day-One", "True Believer", "Loyalist"},
	"Snoutz Skull Tee":  {"Dark Insider", "Shadow Member", "Night Council", "Vault Keeper"},
	"Glyph Shirt":       {"Cryptic", "Code Breaker", "Cipher", "Hieroglyphist"},
}

var shoesNouns = map[string][]string{
	"Sneakers":      {"Pacer", "Street Runner", "Hustler"},
	"Neon Sneakers": {"Rave Runner", "Neon Flash", "Light Trail"},
	"High Tops":     {"Court Rat", "Lace-up Legend", "Top Stepper"},
	"Slides":        {"Easy Rider", "Smooth Operator", "Glider"},
	"Sandals":       {"Beach Walker", "Sandy Soul", "Coastal Drifter"},
	"Workboots":     {"Groundbreaker", "Builder", "Foundation Layer"},
	"High Boots":    {"Ranger", "Outrider", "Frontier Walker"},
	"Urban Boots":   {"City Stomper", "Concrete Crusher", "Pavement Pounder"},
	"Classic":       {"Gentleman", "Old Soul", "Timekeeper"},
	"Canvas":        {"Indie Walker", "Low-key Legend", "Sidewalk Surfer"},
	"Skater":        {"Board Rider", "Kickflipper", "Rail Grinder"},
	"LL Alien":      {"Starwalker", "Galaxy Hopper", "Void Strider"},
	"LL Moonboots":  {"Moonwalker", "Zero-G Drifter", "Lunar Stepper"},
	"LL 86":         {"Time Traveler", "Retro Futurist", "Flux Rider"},
	"LL RGB":        {"Chromatic", "Spectrum Walker", "Light Bender"},
	"LL Retro":      {"Throwback", "Vintage Soul", "Classic Futurist"},
	"Running":       {"Pacer", "Endurance", "Long Hauler"},
	"Basketball":    {"Court General", "Fast Breaker", "Triple Threat"},
}

var pantsNouns = map[string][]string{
	"Suit Pants":      {"Professional", "Corner Office", "Power Player"},
	"Ripped Jeans":    {"Punk", "Road Warrior", "Street Poet"},
	"Cargo Pants":     {"Utility Belt", "Pocket King", "Prepared-for-Anything"},
	"Trackpants":      {"Jogger", "Track Star", "Comfortable King"},
	"Athletic Shorts": {"Gym Rat", "Weekend Warrior", "Active Soul"},
	"Skirt":           {"Style Maven", "Bold Stepper", "Trend Rider"},
	"Leggings":        {"Flex", "Contour", "Agile Spirit"},
	"Regular Pants":   {"Everyman", "Steady Hand", "Reliable One"},
}

var nounFallback = []string{
	"Maverick", "Trailblazer", "Enigma", "Icon", "Legend",
	"Outsider", "Visionary", "Wanderer", "Pioneer", "Spirit",
	"Wildcard", "Rogue", "Sage", "Architect", "Catalyst",
	"Alchemist", "Sentinel", "Nomad", "Oracle", "Prodigy",
	"Virtuoso", "Phoenix", "Vanguard", "Harbinger", "Luminary",
}

var typeDescriptions = map[trait.Type]string{
	trait.TypeHuman:     "You blend into any crowd but stand out in your own way.",
	trait.TypePig:       "You have a playful, carefree energy that's impossible to resist.",
	trait.TypeElephant:  "You carry a quiet strength and wisdom that others can sense.",
	trait.TypeRobot:     "Your mind is a machine, precise, logical, and always optimizing.",
	trait.TypeSkeleton:  "There's a timeless, stripped-down authenticity to your vibe.",
	trait.TypeVisitor:   "You exist between worlds, familiar yet completely alien.",
	trait.TypeDissected: "You see through every layer. Nothing is hidden from you.",
}

// shirtStories is matched by substring against the candidate's shirt value,
// first hit wins, so order matters ("Suit Jacket" hits "Suit" before "Jacket").
var shirtStories = []struct {
	Substr string
	Text   string
}{
	{"Hoodie", "Comfort is your secret weapon. You perform best when you feel at ease."},
	{"Suit", "You dress to impress and it shows in everything you do."},
	{"Jacket", "You dress to impress and it shows in everything you do."},
	{"Jersey", "You're a team player with a competitive streak a mile wide."},
	{"Tee", "You keep things casual but your vibe speaks volumes."},
}

const genericShirtStory = "Your style is uniquely yours, impossible to put in a box."

var glassesStories = map[string]string{
	"Specs":      "You see the world through a sharper lens than most.",
	"Frameless":  "You notice what others miss. Details are your superpower.",
	"3D Glasses": "You experience life in an extra dimension nobody else can see.",
	"Eyepatch":   "There's a story behind that look, and people want to hear it.",
	"VR":         "You live half in this world and half in the next one.",
}

var hatStories = map[string]string{
	"Baseball Cap": "You keep it real. No pretense, just good vibes.",
	"Beanie":       "You've got a cozy soul that puts everyone around you at ease.",
	"Top Hat":      "There's a flair for the dramatic in everything you do.",
	"Headphones":   "Music runs through your veins and sets the rhythm of your life.",
	"Wool Hat":     "You're grounded and practical, but never boring.",
	"Bandana":      "You march to your own beat and wouldn't have it any other way.",
}

var overshirtStories = map[string]string{
	"Leather Jacket":  "There's an edge to you that keeps people intrigued.",
	"Collar Shirt":    "You balance polish and personality effortlessly.",
	"Athletic Jacket": "You bring energy and drive to everything you touch.",
	"Down Jacket":     "You're built for any weather life throws your way.",
	"Cardigan":        "You've got a warm, thoughtful energy that draws people in.",
}

const (
	beardStory    = "You carry a rugged confidence that commands respect."
	necklaceStory = "You know that the right details make all the difference."
	earringStory  = "You've got a bold streak that keeps things interesting."
)
