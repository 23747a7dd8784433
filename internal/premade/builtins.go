package premade

// Builtins returns the bundles that ship with the tool. Override names
// refer to the built-in catalog; unknown names are skipped at apply time,
// so a trimmed-down registry stays compatible.
func Builtins() []Preset {
	return []Preset{
		{
			Name:        "Intended",
			Description: "Keeps progression close to the vanilla experience.",
			Overrides: []Override{
				{Setting: "Forest", Value: "Closed"},
				{Setting: "Kakariko Gate", Value: "Closed"},
				{Setting: "Door of Time", Value: "Closed"},
				{Setting: "Zora's Fountain", Value: "Normal"},
				{Setting: "Gerudo Fortress", Value: "Normal"},
				{Setting: "Rainbow Bridge", Value: "Medallions"},
				{Setting: "Bridge Medallion\nCount", Value: "6"},
				{Setting: "Random Ganon's Trials", Value: "Off"},
				{Setting: "Ganon's Trials Count", Value: "6"},
			},
		},
		{
			Name:        "Allsanity",
			Description: "Every shuffle turned on, everything anywhere.",
			Overrides: []Override{
				{Setting: "Shuffle Entrances", Value: "On"},
				{Setting: "Shuffle Dungeon Entrances", Value: "On + Ganon"},
				{Setting: "Shuffle Overworld Entrances", Value: "On"},
				{Setting: "Shuffle Interior Entrances", Value: "All"},
				{Setting: "Shuffle Grotto Entrances", Value: "On"},
				{Setting: "Shuffle Songs", Value: "Anywhere"},
				{Setting: "Shopsanity", Value: "Shuffled Shops (4 Items)"},
				{Setting: "Tokensanity", Value: "All Tokens"},
				{Setting: "Scrub Shuffle", Value: "Affordable"},
				{Setting: "Shuffle Cows", Value: "On"},
				{Setting: "Shuffle Kokiri Sword", Value: "On"},
				{Setting: "Shuffle Ocarinas", Value: "On"},
				{Setting: "Shuffle Weird Egg", Value: "On"},
				{Setting: "Shuffle Gerudo Token", Value: "On"},
				{Setting: "Shuffle Magic Beans", Value: "On"},
			},
		},
		{
			Name:        "Racing",
			Description: "Fast, open, and balanced for head-to-head seeds.",
			Overrides: []Override{
				{Setting: "Forest", Value: "Open"},
				{Setting: "Kakariko Gate", Value: "Open"},
				{Setting: "Door of Time", Value: "Open"},
				{Setting: "Gerudo Fortress", Value: "Fast"},
				{Setting: "Rainbow Bridge", Value: "Medallions"},
				{Setting: "Bridge Medallion\nCount", Value: "6"},
				{Setting: "Ganon's Trials Count", Value: "0"},
				{Setting: "Starting Age", Value: "Adult"},
				{Setting: "Shuffle Kokiri Sword", Value: "On"},
				{Setting: "Skip Child Stealth", Value: "Skip"},
				{Setting: "Skip Tower Escape", Value: "Skip"},
				{Setting: "Skip Epona Race", Value: "Skip"},
				{Setting: "Free Scarecrow's Song", Value: "On"},
				{Setting: "Big Poe Target Count", Value: "1"},
				{Setting: "Cucco Count", Value: "3"},
				{Setting: "Complete Mask Quest", Value: "On"},
				{Setting: "Fast Bunny Hood", Value: "On"},
			},
		},
	}
}
