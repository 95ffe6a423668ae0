package quiz

import "github.com/MeebitForge/MeebitStudio/server/internal/domain/trait"

// Questions is the canonical 21-question quiz. Answer weights feed directly
// into profile accumulation; the order of questions never affects the result.
var Questions = []Question{
	{
		Question: "What's your vibe?",
		Subtitle: "Pick the one that feels most like you",
		Answers: []Answer{
			{Text: "Life of the party", Desc: "Always the center of attention",
				Traits: map[trait.Category]Weights{CategoryType: {"Human": 2.0}}},
			{Text: "Quietly observing", Desc: "I see everything from the corner",
				Traits: map[trait.Category]Weights{CategoryType: {"Visitor": 2.0, "Skeleton": 1.5}}},
			{Text: "Charging in headfirst", Desc: "No fear, no hesitation",
				Traits: map[trait.Category]Weights{CategoryType: {"Elephant": 2.0, "Pig": 1.5}}},
			{Text: "Calculated and precise", Desc: "Everything has a purpose",
				Traits: map[trait.Category]Weights{CategoryType: {"Robot": 2.0, "Skeleton": 1.0}}},
			{Text: "Marching to my own beat", Desc: "Society's rules don't apply",
				Traits: map[trait.Category]Weights{CategoryType: {"Dissected": 2.0, "Visitor": 1.5}}},
			{Text: "Loyal and chill", Desc: "Just here for a good time",
				Traits: map[trait.Category]Weights{CategoryType: {"Pig": 2.0, "Human": 1.0}}},
		},
	},
	{
		Question: "It's Saturday morning. What are you doing?",
		Subtitle: "Be honest now",
		Answers: []Answer{
			{Text: "Sleeping in, then gaming", Desc: "Maximum comfort mode",
				Traits: map[trait.Category]Weights{
					trait.CategoryShirt: {"Hoodie": 2.0, "Oversized Hoodie": 2.0, "Hoodie Up": 1.5},
					trait.CategoryPants: {"Athletic Shorts": 1.5, "Trackpants": 1.5},
				}},
			{Text: "Hitting the gym", Desc: "No rest days",
				Traits: map[trait.Category]Weights{
					trait.CategoryShirt: {"Basketball Jersey": 2.0, "Classic Jersey": 1.5, "Bare Chest": 1.5},
					trait.CategoryPants: {"Athletic Shorts": 2.0, "Leggings": 1.5},
				}},
			{Text: "Brunch with friends", Desc: "Looking sharp, feeling sharper",
				Traits: map[trait.Category]Weights{
					trait.CategoryShirt:     {"Suit": 2.0, "Suit Jacket": 1.5},
					trait.CategoryPants:     {"Suit Pants": 2.0, "Regular Pants": 1.5},
					trait.CategoryOvershirt: {"Collar Shirt": 1.5},
				}},
			{Text: "Exploring a flea market", Desc: "Thrifting is an art form",
				Traits: map[trait.Category]Weights{
					trait.CategoryShirt: {"Tie-dyed Tee": 2.0, "Hawaiian": 2.0, "Flamingo Tee": 1.5},
					trait.CategoryPants: {"Ripped Jeans": 2.0, "Cargo Pants": 1.5},
				}},
			{Text: "Working on a creative project", Desc: "Paint, code, music, something",
				Traits: map[trait.Category]Weights{
					trait.CategoryShirt: {"Tee": 1.5, "Ghost Tee": 1.5, "Skull Tee": 1.5, "Logo Tee": 1.5},
					trait.CategoryPants: {"Cargo Pants": 2.0, "Short Leggings": 1.5},
				}},
			{Text: "Adventuring outdoors", Desc: "Mountains, trails, fresh air",
				Traits: map[trait.Category]Weights{
					trait.CategoryShirt:     {"Windbreaker": 2.0, "Long-sleeved": 1.5},
					trait.CategoryPants:     {"Cargo Pants": 2.0, "Regular Pants": 1.5},
					trait.CategoryOvershirt: {"Athletic Jacket": 2.0},
				}},
		},
	},
	{
		Question: "If you had to wear one graphic tee every day for a week, what would it be?",
		Subtitle: "No judgment",
		Answers: []Answer{
			{Text: "Skull print", Desc: "Dark and edgy",
				Traits: map[trait.Category]Weights{trait.CategoryShirt: {"Skull Tee": 2.5, "Snoutz Skull Tee": 1.5}}},
			{Text: "Retro pixel art", Desc: "8-bit nostalgia",
				Traits: map[trait.Category]Weights{trait.CategoryShirt: {"Invader Tee": 2.5, "CGA Shirt": 2.0, "Ghost Tee": 1.5}}},
			{Text: "Heart / love design", Desc: "Wear your feelings",
				Traits: map[trait.Category]Weights{trait.CategoryShirt: {"Heart Tee": 2.5, "Heart Hoodie": 2.0}}},
			{Text: "Tropical vibes", Desc: "Flamingos, palm trees",
				Traits: map[trait.Category]Weights{trait.CategoryShirt: {"Flamingo Tee": 2.5, "Hawaiian": 2.0, "Tie-dyed Tee": 1.5}}},
			{Text: "Clean logo / minimal", Desc: "Less is more",
				Traits: map[trait.Category]Weights{trait.CategoryShirt: {"Logo Tee": 2.5, "Tee": 2.0, "Diagonal Tee": 1.5, "Lines": 1.5}}},
			{Text: "Punk rock", Desc: "Safety pins and attitude",
				Traits: map[trait.Category]Weights{trait.CategoryShirt: {"Punk Tee": 2.5, "Glyph Shirt": 2.0, "Meepet Tee": 1.5}}},
		},
	},
	{
		Question: "Pick your color palette",
		Subtitle: "The colors you gravitate toward",
		Answers: []Answer{
			{Text: "All black everything", Desc: "Sleek, dark, timeless",
				Traits: map[trait.Category]Weights{
					trait.CategoryShirtColor: {"Black": 2.5},
					trait.CategoryShoesColor: {"Black": 2.0},
					trait.CategoryPantsColor: {"Black": 2.0},
					trait.CategoryHatColor:   {"Black": 1.5},
				}},
			{Text: "Bold reds & magentas", Desc: "Turn heads everywhere",
				Traits: map[trait.Category]Weights{
					trait.CategoryShirtColor:     {"Red": 2.0, "Magenta": 2.0},
					trait.CategoryShoesColor:     {"Red": 1.5, "Magenta": 1.5},
					trait.CategoryOvershirtColor: {"Red": 1.5, "Magenta": 1.5},
				}},
			{Text: "Cool purples", Desc: "Mysterious and regal",
				Traits: map[trait.Category]Weights{
					trait.CategoryShirtColor: {"Purple": 2.5},
					trait.CategoryShoesColor: {"Purple": 2.0},
					trait.CategoryPantsColor: {"Purple": 1.5},
					trait.CategoryHatColor:   {"Purple": 1.5},
				}},
			{Text: "Clean whites & grays", Desc: "Minimalist aesthetic",
				Traits: map[trait.Category]Weights{
					trait.CategoryShirtColor: {"White": 2.0, "Gray": 2.0},
					trait.CategoryShoesColor: {"White": 1.5, "Gray": 1.5},
					trait.CategoryHatColor:   {"White": 1.5, "Gray": 1.5},
				}},
			{Text: "Military & earth tones", Desc: "Camo, olive, rugged",
				Traits: map[trait.Category]Weights{
					trait.CategoryShirtColor:     {"Camo": 2.5, "Green": 2.0},
					trait.CategoryPantsColor:     {"Camo": 2.5, "Denim": 1.5},
					trait.CategoryOvershirtColor: {"Camo": 1.5, "Green": 1.5},
				}},
			{Text: "Loud patterns", Desc: "Leopard, plaid, argyle",
				Traits: map[trait.Category]Weights{
					trait.CategoryShirtColor:     {"Leopard Print": 2.5, "Argyle": 2.0, "Red Plaid": 1.5},
					trait.CategoryPantsColor:     {"Leopard Print": 2.0},
					trait.CategoryOvershirtColor: {"Argyle": 1.5},
				}},
			{Text: "Sunshine yellows & greens", Desc: "Bright and cheerful",
				Traits: map[trait.Category]Weights{
					trait.CategoryShirtColor: {"Yellow": 2.5, "Green": 2.0},
					trait.CategoryShoesColor: {"Yellow": 2.0, "Green": 1.5},
					trait.CategoryHatColor:   {"Yellow": 1.5, "Green": 1.5},
				}},
		},
	},
	{
		Question: "And your secondary color?",
		Subtitle: "For pants, shoes, accessories",
		Answers: []Answer{
			{Text: "Dark denim", Desc: "The universal neutral",
				Traits: map[trait.Category]Weights{trait.CategoryPantsColor: {"Denim": 2.5, "Dark Gray": 2.0}}},
			{Text: "Classic black", Desc: "Matches everything",
				Traits: map[trait.Category]Weights{
					trait.CategoryPantsColor: {"Black": 2.5},
					trait.CategoryShoesColor: {"Black": 2.0},
				}},
			{Text: "Bright and bold", Desc: "Why blend in?",
				Traits: map[trait.Category]Weights{
					trait.CategoryPantsColor: {"Red": 2.0, "Purple": 2.0, "Magenta": 1.5},
					trait.CategoryShoesColor: {"Red": 1.5, "Purple": 1.5},
				}},
			{Text: "Camo / military", Desc: "Rugged and tactical",
				Traits: map[trait.Category]Weights{
					trait.CategoryPantsColor: {"Camo": 2.5, "Blue Camo": 2.0},
					trait.CategoryShoesColor: {"Green": 1.5},
				}},
			{Text: "White / light", Desc: "Clean and fresh",
				Traits: map[trait.Category]Weights{
					trait.CategoryPantsColor: {"White": 2.5},
					trait.CategoryShoesColor: {"White": 2.0, "Gray": 1.5},
				}},
			{Text: "Premium patterns", Desc: "Luxe, plaid, posh",
				Traits: map[trait.Category]Weights{
					trait.CategoryPantsColor:     {"Luxe": 2.5, "Posh": 2.0, "Leopard Print": 1.5},
					trait.CategoryOvershirtColor: {"Luxe": 1.5, "Posh": 1.5},
				}},
		},
	},
	{
		Question: "What superpower would you choose?",
		Subtitle: "Only one, choose wisely",
		Answers: []Answer{
			{Text: "X-ray vision", Desc: "See through anything",
				Traits: map[trait.Category]Weights{trait.CategoryGlasses: {"3D": 2.5, "Aviators": 1.5}}},
			{Text: "Time travel", Desc: "Past, future, anywhere",
				Traits: map[trait.Category]Weights{
					trait.CategoryGlasses: {"Specs": 2.0, "Nerdy": 2.0},
					trait.CategoryHat:     {"Headphones": 1.5},
				}},
			{Text: "Invisibility", Desc: "Now you see me, now you don't",
				Traits: map[trait.Category]Weights{trait.CategoryGlasses: {"Sunglasses": 2.5, "Frameless": 1.5}}},
			{Text: "Super strength", Desc: "Move mountains, literally",
				Traits:     map[trait.Category]Weights{trait.CategoryHat: {"Bandana": 2.5, "Backwards Cap": 1.5}},
				PreferNone: []trait.Category{trait.CategoryGlasses}},
			{Text: "Telepathy", Desc: "Read every mind in the room",
				Traits: map[trait.Category]Weights{trait.CategoryGlasses: {"Round Glasses": 2.5, "Elvis": 1.5}}},
		},
	},
	{
		Question: "What's your eyewear style?",
		Subtitle: "Be honest, we won't judge",
		Answers: []Answer{
			{Text: "No glasses, perfect vision", Desc: "20/20 and proud of it",
				PreferNone: []trait.Category{trait.CategoryGlasses}},
			{Text: "I'm blind without them", Desc: "Can't find my glasses without my glasses",
				Traits: map[trait.Category]Weights{trait.CategoryGlasses: {"Specs": 2.5, "Nerdy": 2.0, "Frameless": 1.5}}},
			{Text: "Cool shades only", Desc: "Sun's always too bright",
				Traits: map[trait.Category]Weights{trait.CategoryGlasses: {"Sunglasses": 2.5, "Aviators": 2.0}}},
			{Text: "Round / retro vibes", Desc: "Lennon, Potter, or just vibes",
				Traits: map[trait.Category]Weights{trait.CategoryGlasses: {"Round Glasses": 2.5, "Elvis": 2.0}}},
			{Text: "3D / futuristic", Desc: "Living in 2099",
				Traits: map[trait.Category]Weights{trait.CategoryGlasses: {"3D": 2.5}}},
			{Text: "Whatever looks good", Desc: "Fashion first, function second",
				Traits: map[trait.Category]Weights{trait.CategoryGlasses: {
					"Sunglasses": 1.0, "Aviators": 1.0, "Round Glasses": 1.0, "Specs": 1.0,
					"Frameless": 1.0, "Elvis": 0.5, "Nerdy": 0.5, "3D": 0.5,
				}}},
		},
	},
	{
		Question: "Pick your headwear",
		Subtitle: "What goes on top?",
		Answers: []Answer{
			{Text: "Baseball cap", Desc: "Forward or backwards",
				Traits: map[trait.Category]Weights{trait.CategoryHat: {"Cap": 2.5, "Backwards Cap": 2.0, "Trucker Cap": 1.5, "Snoutz Cap": 1.5}}},
			{Text: "Beanie / wool hat", Desc: "Cozy and cool",
				Traits: map[trait.Category]Weights{trait.CategoryHat: {"Wool Hat": 2.5, "Bandana": 1.5}}},
			{Text: "Headphones", Desc: "Music is life",
				Traits: map[trait.Category]Weights{trait.CategoryHat: {"Headphones": 3.0}}},
			{Text: "Wide brim / stylish", Desc: "Making a statement",
				Traits: map[trait.Category]Weights{trait.CategoryHat: {"Brimmed": 3.0}}},
			{Text: "Nothing, let the hair speak", Desc: "No hat needed",
				PreferNone: []trait.Category{trait.CategoryHat}},
		},
	},
	{
		Question: "What's your dream job?",
		Subtitle: "Money is no object",
		Answers: []Answer{
			{Text: "Rock star / DJ", Desc: "Sold-out arenas, screaming fans",
				Traits: map[trait.Category]Weights{
					trait.CategoryOvershirt: {"Leather Jacket": 2.5},
					trait.CategoryShirt:     {"Punk Tee": 1.5, "Skull Tee": 1.5},
					trait.CategoryHat:       {"Headphones": 1.5},
				}},
			{Text: "CEO / Entrepreneur", Desc: "Building empires, making deals",
				Traits: map[trait.Category]Weights{
					trait.CategoryOvershirt: {"Collar Shirt": 2.0, "Trenchcoat": 2.0},
					trait.CategoryShirt:     {"Suit": 2.0},
				}},
			{Text: "Artist / Designer", Desc: "Creating beauty from nothing",
				Traits: map[trait.Category]Weights{
					trait.CategoryOvershirt: {"Jean Jacket": 2.5},
					trait.CategoryShirt:     {"Tie-dyed Tee": 1.5, "Flamingo Tee": 1.5},
				}},
			{Text: "Pro athlete", Desc: "Competing at the highest level",
				Traits:     map[trait.Category]Weights{trait.CategoryShirt: {"Basketball Jersey": 2.0, "Jersey": 2.0, "Classic Jersey": 1.5}},
				PreferNone: []trait.Category{trait.CategoryOvershirt}},
			{Text: "Secret agent", Desc: "Danger, intrigue, exotic locations",
				Traits: map[trait.Category]Weights{
					trait.CategoryOvershirt: {"Trenchcoat": 2.5},
					trait.CategoryGlasses:   {"Sunglasses": 1.5, "Aviators": 1.5},
				}},
			{Text: "Video game streamer", Desc: "Playing games for a living",
				Traits: map[trait.Category]Weights{
					trait.CategoryShirt: {"Invader Tee": 2.0, "Ghost Tee": 2.0, "Heart Hoodie": 1.5},
					trait.CategoryHat:   {"Headphones": 2.0},
				}},
		},
	},
	{
		Question: "How do you accessorize?",
		Subtitle: "What finishes your look",
		Answers: []Answer{
			{Text: "Dripping in gold", Desc: "Chains, hoops, the works",
				Traits: map[trait.Category]Weights{
					trait.CategoryEarring:  {"Gold Earrings": 2.0, "Gold Hoops": 2.0},
					trait.CategoryNecklace: {"Gold Chain": 2.5, "Gold Necklace": 2.0},
				}},
			{Text: "One statement piece", Desc: "Less is more, but make it count",
				Traits: map[trait.Category]Weights{
					trait.CategoryEarring:  {"Gold Earring": 2.5},
					trait.CategoryNecklace: {"Gold Necklace": 2.0},
				}},
			{Text: "Ink over bling", Desc: "Tattoos tell my story",
				Traits:     map[trait.Category]Weights{trait.CategoryTattoo: {HasValue: 2.5}},
				PreferNone: []trait.Category{trait.CategoryEarring, trait.CategoryNecklace}},
			{Text: "Keep it clean", Desc: "No accessories needed",
				PreferNone: []trait.Category{trait.CategoryEarring, trait.CategoryNecklace, trait.CategoryTattoo}},
			{Text: "Mix of everything", Desc: "More is more, layer it on",
				Traits: map[trait.Category]Weights{
					trait.CategoryEarring:  {"Gold Earrings": 1.5, "Gold Hoops": 1.5},
					trait.CategoryNecklace: {"Gold Chain": 1.5},
					trait.CategoryTattoo:   {HasValue: 1.5},
				}},
		},
	},
	{
		Question: "Pick a hairstyle vibe",
		Subtitle: "What energy does your hair give off?",
		Answers: []Answer{
			{Text: "Clean and minimal", Desc: "Buzzcut, fade, no fuss",
				Traits: map[trait.Category]Weights{trait.CategoryHairStyle: {"Buzzcut": 2.0, "Bald": 2.0, "Fade": 1.5, "Simple": 1.5}}},
			{Text: "Wild and untamed", Desc: "Big energy, bigger hair",
				Traits: map[trait.Category]Weights{trait.CategoryHairStyle: {"Wild": 2.5, "Messy": 2.0, "Curly": 1.5}}},
			{Text: "Sleek and styled", Desc: "Put-together, polished",
				Traits: map[trait.Category]Weights{trait.CategoryHairStyle: {"Ponytail": 2.0, "Pulled Back": 2.0, "Straight": 1.5, "Bob": 1.5}}},
			{Text: "Bold statement", Desc: "Mohawk, half-shaved, colored",
				Traits: map[trait.Category]Weights{trait.CategoryHairStyle: {"Mohawk": 2.5, "Fiery Mohawk": 2.5, "Half-shaved": 2.0, "Spiky": 1.5}}},
			{Text: "Classic and timeless", Desc: "Never goes out of style",
				Traits: map[trait.Category]Weights{trait.CategoryHairStyle: {"Simple": 2.0, "Long": 1.5, "High Flat Top": 1.5, "Very Long": 1.5}}},
			{Text: "Buns and updos", Desc: "Pulled up and out of the way",
				Traits: map[trait.Category]Weights{trait.CategoryHairStyle: {"Bun": 2.5, "Pigtails": 2.0, "Big Bangs": 1.5, "One Side": 1.5}}},
		},
	},
	{
		Question: "What's your ideal hair color?",
		Subtitle: "Natural or not, you decide",
		Answers: []Answer{
			{Text: "Dark / natural", Desc: "Classic and understated",
				Traits: map[trait.Category]Weights{trait.CategoryHairColor: {"Dark": 2.5, "Brown": 2.0}}},
			{Text: "Blonde / light", Desc: "Sun-kissed",
				Traits: map[trait.Category]Weights{trait.CategoryHairColor: {"Blond": 2.5, "Blonde": 2.5, "Bleached": 2.0}}},
			{Text: "Red / auburn", Desc: "Fiery and warm",
				Traits: map[trait.Category]Weights{trait.CategoryHairColor: {"Dyed Red": 2.5, "Auburn": 2.0}}},
			{Text: "Silver / gray", Desc: "Distinguished or futuristic",
				Traits: map[trait.Category]Weights{
					trait.CategoryHairColor:  {"Silver": 2.5},
					trait.CategoryBeardColor: {"Silver": 1.5},
				}},
			{Text: "Wild colors", Desc: "Purple, blue, rainbow",
				Traits: map[trait.Category]Weights{trait.CategoryHairColor: {"Purple Dye": 2.5, "Blue": 2.0, "Light Blue": 2.0, "Rainbow": 2.5}}},
			{Text: "No preference / bald", Desc: "Hair color doesn't matter",
				Traits: map[trait.Category]Weights{trait.CategoryHairStyle: {"Bald": 1.5}}},
		},
	},
	{
		Question: "What's your shoe game?",
		Subtitle: "Footwear says a lot about a person",
		Answers: []Answer{
			{Text: "Sneakerhead", Desc: "Fresh kicks, always",
				Traits: map[trait.Category]Weights{trait.CategoryShoes: {"Sneakers": 2.0, "Neon Sneakers": 2.0, "High Tops": 2.0}}},
			{Text: "Comfort first", Desc: "Slides, sandals, easy living",
				Traits: map[trait.Category]Weights{trait.CategoryShoes: {"Slides": 2.5, "Sandals": 2.0}}},
			{Text: "Tough and rugged", Desc: "Boots built to last",
				Traits: map[trait.Category]Weights{trait.CategoryShoes: {"Workboots": 2.5, "Urban Boots": 2.0, "High Boots": 1.5}}},
			{Text: "Skater vibes", Desc: "Board-ready at all times",
				Traits: map[trait.Category]Weights{trait.CategoryShoes: {"Skater": 2.5, "Canvas": 2.0}}},
			{Text: "Classic and versatile", Desc: "Goes with everything",
				Traits: map[trait.Category]Weights{trait.CategoryShoes: {"Classic": 2.5, "Canvas": 1.5, "Running": 1.5, "Basketball": 1.5}}},
			{Text: "Rare collector pieces", Desc: "One-of-a-kind exclusives",
				Traits: map[trait.Category]Weights{trait.CategoryShoes: {"LL Alien": 2.5, "LL Moonboots": 2.5, "LL 86": 2.0, "LL RGB": 2.0, "LL Retro": 1.5}}},
		},
	},
	{
		Question: "Facial hair preference?",
		Subtitle: "What suits your face",
		Answers: []Answer{
			{Text: "Clean-shaven", Desc: "Smooth and polished",
				PreferNone: []trait.Category{trait.CategoryBeard}},
			{Text: "Stubble / 5 o'clock shadow", Desc: "Effortlessly cool",
				Traits: map[trait.Category]Weights{trait.CategoryBeard: {"Stubble": 2.5}}},
			{Text: "Full beard", Desc: "Lumberjack energy",
				Traits: map[trait.Category]Weights{trait.CategoryBeard: {"Full": 2.5, "Big": 2.0}}},
			{Text: "Styled mustache", Desc: "Vintage charm",
				Traits: map[trait.Category]Weights{trait.CategoryBeard: {"Mustache": 2.5, "Biker Mustache": 2.0, "Muttonchops": 1.5}}},
			{Text: "Face covering", Desc: "Keep some mystery",
				Traits: map[trait.Category]Weights{trait.CategoryBeard: {"Medical Mask": 3.0}}},
		},
	},
	{
		Question: "How would your friends describe you?",
		Subtitle: "The real you, not the one on your resume",
		Answers: []Answer{
			{Text: "The wise one", Desc: "Always has advice, always has answers",
				Traits: map[trait.Category]Weights{
					trait.CategoryBeard:   {"Full": 1.5, "Big": 1.5},
					trait.CategoryGlasses: {"Round Glasses": 1.5, "Specs": 1.5},
					trait.CategoryShirt:   {"Long-sleeved": 1.0},
				}},
			{Text: "The rebel", Desc: "Rules? What rules?",
				Traits: map[trait.Category]Weights{
					trait.CategoryOvershirt: {"Leather Jacket": 2.0},
					trait.CategoryShirt:     {"Punk Tee": 1.5, "Skull Tee": 1.5},
					trait.CategoryHairStyle: {"Mohawk": 1.0},
				}},
			{Text: "The trendsetter", Desc: "Everyone copies your style",
				Traits: map[trait.Category]Weights{
					trait.CategoryHat:   {"Cap": 1.5, "Snoutz Cap": 1.5},
					trait.CategoryShirt: {"Snoutz Tee": 1.5, "Snoutz Hoodie": 1.5},
					trait.CategoryShoes: {"Neon Sneakers": 1.0},
				}},
			{Text: "The professional", Desc: "Put-together, reliable, polished",
				Traits: map[trait.Category]Weights{
					trait.CategoryShirt:     {"Suit": 1.5},
					trait.CategoryGlasses:   {"Frameless": 1.5},
					trait.CategoryOvershirt: {"Collar Shirt": 1.5},
					trait.CategoryBeard:     {"Mustache": 1.0},
				}},
			{Text: "The free spirit", Desc: "Goes wherever the wind takes them",
				Traits: map[trait.Category]Weights{
					trait.CategoryHat:   {"Bandana": 1.5},
					trait.CategoryShirt: {"Hawaiian": 2.0, "Tie-dyed Tee": 1.5},
					trait.CategoryShoes: {"Sandals": 1.0},
				},
				PreferNone: []trait.Category{trait.CategoryBeard}},
			{Text: "The mysterious one", Desc: "Nobody quite knows your full story",
				Traits: map[trait.Category]Weights{
					trait.CategoryHat:       {"Wool Hat": 1.5, "Brimmed": 1.5},
					trait.CategoryGlasses:   {"Sunglasses": 2.0},
					trait.CategoryOvershirt: {"Trenchcoat": 1.5},
				}},
		},
	},
	{
		Question: "Pick your style archetype",
		Subtitle: "If you had to sum up your look in one word",
		Answers: []Answer{
			{Text: "Streetwear", Desc: "Hoodies, sneakers, caps",
				Traits: map[trait.Category]Weights{
					trait.CategoryShirt: {"Hoodie": 1.5, "Oversized Hoodie": 1.5},
					trait.CategoryShoes: {"High Tops": 1.5, "Sneakers": 1.0},
					trait.CategoryHat:   {"Cap": 1.0, "Backwards Cap": 1.0},
					trait.CategoryPants: {"Trackpants": 1.0},
				}},
			{Text: "Formal / business", Desc: "Suits, dress shoes, class",
				Traits: map[trait.Category]Weights{
					trait.CategoryShirt:     {"Suit": 2.0, "Suit Jacket": 1.5},
					trait.CategoryPants:     {"Suit Pants": 1.5},
					trait.CategoryShoes:     {"Classic": 1.5},
					trait.CategoryOvershirt: {"Collar Shirt": 1.0},
				}},
			{Text: "Sporty / athletic", Desc: "Jerseys, leggings, performance gear",
				Traits: map[trait.Category]Weights{
					trait.CategoryShirt: {"Basketball Jersey": 1.5, "Jersey": 1.5, "Windbreaker": 1.0},
					trait.CategoryPants: {"Athletic Shorts": 1.5, "Leggings": 1.5},
					trait.CategoryShoes: {"Running": 1.5},
				}},
			{Text: "Punk / alternative", Desc: "Leather, studs, dark",
				Traits: map[trait.Category]Weights{
					trait.CategoryOvershirt: {"Leather Jacket": 1.5},
					trait.CategoryShirt:     {"Punk Tee": 1.5, "Skull Tee": 1.0},
					trait.CategoryPants:     {"Ripped Jeans": 1.5},
					trait.CategoryShoes:     {"Urban Boots": 1.5},
				}},
			{Text: "Bohemian / free", Desc: "Flowy, colorful, eclectic",
				Traits: map[trait.Category]Weights{
					trait.CategoryShirt: {"Hawaiian": 1.5, "Tie-dyed Tee": 1.5},
					trait.CategoryPants: {"Cargo Pants": 1.0},
					trait.CategoryShoes: {"Sandals": 1.5, "Canvas": 1.0},
					trait.CategoryHat:   {"Bandana": 1.0},
				}},
			{Text: "Minimalist", Desc: "Simple, clean, monochrome",
				Traits: map[trait.Category]Weights{
					trait.CategoryShirt:      {"Tee": 1.5, "Lines": 1.5, "Long-sleeved": 1.0},
					trait.CategoryPants:      {"Regular Pants": 1.5},
					trait.CategoryShoes:      {"Classic": 1.0, "Canvas": 1.0},
					trait.CategoryShirtColor: {"White": 1.0, "Black": 1.0, "Gray": 1.0},
				}},
		},
	},
	{
		Question: "Pick your ideal pants",
		Subtitle: "What are you wearing below the waist?",
		Answers: []Answer{
			{Text: "Denim / jeans", Desc: "Classic and reliable",
				Traits: map[trait.Category]Weights{trait.CategoryPants: {"Regular Pants": 2.5, "Ripped Jeans": 2.0}}},
			{Text: "Athletic shorts", Desc: "Sporty and free",
				Traits: map[trait.Category]Weights{trait.CategoryPants: {"Athletic Shorts": 2.5, "Leggings": 2.0, "Short Leggings": 1.5}}},
			{Text: "Cargo pants", Desc: "Pockets for everything",
				Traits: map[trait.Category]Weights{trait.CategoryPants: {"Cargo Pants": 2.5}}},
			{Text: "Suit pants / slacks", Desc: "Sharp and formal",
				Traits: map[trait.Category]Weights{trait.CategoryPants: {"Suit Pants": 2.5, "Regular Pants": 1.5}}},
			{Text: "Sweats / trackpants", Desc: "Comfort is king",
				Traits: map[trait.Category]Weights{trait.CategoryPants: {"Trackpants": 2.5}}},
			{Text: "Skirt / leggings", Desc: "Flexible and fashionable",
				Traits: map[trait.Category]Weights{trait.CategoryPants: {"Skirt": 2.5, "Leggings": 2.0}}},
		},
	},
	{
		Question: "What era would you live in?",
		Subtitle: "Pick your favorite decade",
		Answers: []Answer{
			{Text: "Roaring 1920s", Desc: "Jazz, glamour, speakeasies",
				Traits: map[trait.Category]Weights{
					trait.CategoryShirt:    {"Suit": 1.5},
					trait.CategoryHat:      {"Brimmed": 1.5},
					trait.CategoryNecklace: {"Gold Necklace": 1.0},
					trait.CategoryBeard:    {"Mustache": 1.0},
				}},
			{Text: "Groovy 1970s", Desc: "Disco, bell-bottoms, flower power",
				Traits: map[trait.Category]Weights{
					trait.CategoryHairStyle: {"Wild": 1.5, "Very Long": 1.5},
					trait.CategoryEarring:   {"Gold Hoops": 1.5},
					trait.CategoryShirt:     {"Hawaiian": 1.0},
					trait.CategoryNecklace:  {"Gold Chain": 1.0},
				}},
			{Text: "Punk 1980s", Desc: "Mohawks, leather, rebellion",
				Traits: map[trait.Category]Weights{
					trait.CategoryHairStyle: {"Mohawk": 1.5, "Spiky": 1.0},
					trait.CategoryOvershirt: {"Leather Jacket": 1.5},
					trait.CategoryShirt:     {"Punk Tee": 1.5},
				}},
			{Text: "Grunge 1990s", Desc: "Flannel, ripped jeans, angst",
				Traits: map[trait.Category]Weights{
					trait.CategoryOvershirt: {"Jean Jacket": 1.5},
					trait.CategoryPants:     {"Ripped Jeans": 1.5},
					trait.CategoryHairStyle: {"Messy": 1.5, "Long": 1.0},
					trait.CategoryBeard:     {"Stubble": 1.0},
				}},
			{Text: "Y2K 2000s", Desc: "Low-rise, butterfly clips, bold color",
				Traits: map[trait.Category]Weights{
					trait.CategoryShirt:     {"Halter Top": 2.0, "Tube Top": 2.0},
					trait.CategoryShoes:     {"Neon Sneakers": 1.5},
					trait.CategoryHairColor: {"Purple Dye": 1.0, "Light Blue": 1.0},
				}},
			{Text: "Far future", Desc: "Cyberpunk, neon, technology",
				Traits: map[trait.Category]Weights{
					CategoryType:          {"Robot": 1.5, "Visitor": 1.0},
					trait.CategoryGlasses: {"3D": 1.5},
					trait.CategoryShoes:   {"LL Alien": 1.5, "LL Moonboots": 1.0, "LL RGB": 1.0},
				}},
		},
	},
	{
		Question: "What's your go-to music?",
		Subtitle: "What's always on your playlist?",
		Answers: []Answer{
			{Text: "Electronic / EDM", Desc: "Bass drops and light shows",
				Traits: map[trait.Category]Weights{
					trait.CategoryHat:   {"Headphones": 2.0},
					trait.CategoryShirt: {"Hoodie": 1.5, "Stylized Hoodie": 1.5},
					trait.CategoryShoes: {"Neon Sneakers": 1.0},
				}},
			{Text: "Rock / metal", Desc: "Loud guitars, louder attitude",
				Traits: map[trait.Category]Weights{
					trait.CategoryOvershirt: {"Leather Jacket": 1.5},
					trait.CategoryShirt:     {"Skull Tee": 1.5, "Punk Tee": 1.0},
					trait.CategoryShoes:     {"Urban Boots": 1.5},
				}},
			{Text: "Hip hop / R&B", Desc: "Beats, flow, style",
				Traits: map[trait.Category]Weights{
					trait.CategoryHat:      {"Cap": 1.5, "Backwards Cap": 1.0},
					trait.CategoryNecklace: {"Gold Chain": 1.5},
					trait.CategoryShirt:    {"Basketball Jersey": 1.0, "Jersey": 1.0},
				}},
			{Text: "Jazz / classical", Desc: "Timeless sophistication",
				Traits: map[trait.Category]Weights{
					trait.CategoryShirt:   {"Suit": 1.5},
					trait.CategoryGlasses: {"Frameless": 1.5},
					trait.CategoryShoes:   {"Classic": 1.5},
				}},
			{Text: "Pop", Desc: "Catchy hooks, good vibes",
				Traits: map[trait.Category]Weights{
					trait.CategoryShirt:      {"Heart Tee": 1.5, "Logo Tee": 1.0},
					trait.CategoryShoes:      {"Sneakers": 1.0},
					trait.CategoryShirtColor: {"Magenta": 1.0, "Yellow": 1.0},
				}},
			{Text: "Indie / folk", Desc: "Acoustic, soulful, real",
				Traits: map[trait.Category]Weights{
					trait.CategoryOvershirt: {"Jean Jacket": 1.5},
					trait.CategoryHat:       {"Bandana": 1.5},
					trait.CategoryShoes:     {"Canvas": 1.5},
					trait.CategoryShirt:     {"Tie-dyed Tee": 1.0},
				}},
		},
	},
	{
		Question: "Pick your ideal vacation",
		Subtitle: "Where are you headed?",
		Answers: []Answer{
			{Text: "Beach paradise", Desc: "Sand, surf, sun",
				Traits: map[trait.Category]Weights{
					trait.CategoryShoes: {"Slides": 1.5, "Sandals": 1.5},
					trait.CategoryShirt: {"Hawaiian": 1.5},
					trait.CategoryPants: {"Athletic Shorts": 1.5},
				}},
			{Text: "Mountain adventure", Desc: "Hiking, camping, fresh air",
				Traits: map[trait.Category]Weights{
					trait.CategoryShoes: {"Workboots": 1.5, "High Boots": 1.0},
					trait.CategoryShirt: {"Windbreaker": 1.5},
					trait.CategoryPants: {"Cargo Pants": 1.5},
				}},
			{Text: "City exploration", Desc: "Museums, food, nightlife",
				Traits: map[trait.Category]Weights{
					trait.CategoryShoes: {"Sneakers": 1.5},
					trait.CategoryShirt: {"Tee": 1.0, "Logo Tee": 1.0},
					trait.CategoryPants: {"Regular Pants": 1.5},
				}},
			{Text: "Music festival", Desc: "Three days of nonstop vibes",
				Traits: map[trait.Category]Weights{
					trait.CategoryHat:    {"Bandana": 1.5},
					trait.CategoryShirt:  {"Tie-dyed Tee": 1.5},
					trait.CategoryShoes:  {"Sandals": 1.5},
					trait.CategoryTattoo: {HasValue: 1.0},
				}},
			{Text: "Ski resort", Desc: "Powder, hot cocoa, cozy lodge",
				Traits: map[trait.Category]Weights{
					trait.CategoryHat:   {"Wool Hat": 1.5},
					trait.CategoryShirt: {"Hoodie Up": 1.5, "Windbreaker": 1.0},
					trait.CategoryShoes: {"High Boots": 1.5},
				}},
			{Text: "Luxury resort", Desc: "Five stars, pool, pampering",
				Traits: map[trait.Category]Weights{
					trait.CategoryShirt:   {"Suit": 1.5},
					trait.CategoryShoes:   {"Classic": 1.5},
					trait.CategoryPants:   {"Suit Pants": 1.5},
					trait.CategoryGlasses: {"Sunglasses": 1.0},
				}},
		},
	},
	{
		Question: "What animal are you?",
		Subtitle: "Pick your spirit animal",
		Answers: []Answer{
			{Text: "Lion", Desc: "Proud, powerful, commanding",
				Traits: map[trait.Category]Weights{
					CategoryType:            {"Elephant": 1.5},
					trait.CategoryBeard:     {"Big": 1.5, "Full": 1.0},
					trait.CategoryHairStyle: {"Wild": 1.5},
				}},
			{Text: "Owl", Desc: "Wise, patient, all-seeing",
				Traits: map[trait.Category]Weights{
					CategoryType:          {"Visitor": 1.5, "Skeleton": 1.0},
					trait.CategoryGlasses: {"Round Glasses": 1.5},
					trait.CategoryHat:     {"Wool Hat": 1.0},
				}},
			{Text: "Wolf", Desc: "Loyal, fierce, pack leader",
				Traits: map[trait.Category]Weights{
					CategoryType:            {"Human": 1.5},
					trait.CategoryBeard:     {"Stubble": 1.5},
					trait.CategoryOvershirt: {"Leather Jacket": 1.0},
				}},
			{Text: "Chameleon", Desc: "Adaptive, colorful, unique",
				Traits: map[trait.Category]Weights{
					CategoryType:            {"Dissected": 1.5},
					trait.CategoryGlasses:   {"Sunglasses": 1.0},
					trait.CategoryShirt:     {"Tie-dyed Tee": 1.0},
					trait.CategoryHairColor: {"Rainbow": 1.5},
				}},
			{Text: "Dolphin", Desc: "Playful, social, free",
				Traits: map[trait.Category]Weights{
					CategoryType:        {"Pig": 1.5},
					trait.CategoryPants: {"Athletic Shorts": 1.0},
				},
				PreferNone: []trait.Category{trait.CategoryGlasses}},
			{Text: "Fox", Desc: "Clever, sleek, mysterious",
				Traits: map[trait.Category]Weights{
					CategoryType:            {"Robot": 1.5},
					trait.CategoryGlasses:   {"Aviators": 1.5},
					trait.CategoryOvershirt: {"Trenchcoat": 1.0},
				}},
		},
	},
}
