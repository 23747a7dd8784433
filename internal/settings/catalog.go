package settings

import "strconv"

// onOff is the option list shared by boolean settings.
func onOff() []string {
	return []string{"Off", "On"}
}

// counted builds numeric labels from 0 through max inclusive.
func counted(max int) []string {
	labels := make([]string, 0, max+1)
	for i := 0; i <= max; i++ {
		labels = append(labels, strconv.Itoa(i))
	}
	return labels
}

// DefaultRegistry constructs the built-in randomizer settings catalog.
// Menu order here is the canonical order presets are written in.
func DefaultRegistry() *Registry {
	open := &Menu{
		Name: "Open Settings",
		Mode: MenuOptions,
		Settings: []*Definition{
			NewDefinition("Forest", CategorySetting, "Closed", "Closed Deku", "Open"),
			NewDefinition("Kakariko Gate", CategorySetting, "Closed", "Open"),
			NewDefinition("Door of Time", CategorySetting, "Closed", "Song only", "Open"),
			NewDefinition("Zora's Fountain", CategorySetting, "Normal", "Adult", "Open"),
			NewDefinition("Gerudo Fortress", CategorySetting, "Normal", "Fast", "Open"),
			NewDefinition("Rainbow Bridge", CategorySetting, "Open", "Vanilla", "Stones", "Medallions", "Dungeons", "Tokens"),
			// Wraps across two lines in the menu UI; the persisted name is
			// the normalized single-line form.
			NewDefinition("Bridge Medallion\nCount", CategorySetting, counted(6)...),
			NewDefinition("Random Ganon's Trials", CategorySetting, onOff()...),
			NewDefinition("Ganon's Trials Count", CategorySetting, counted(6)...),
		},
	}

	world := &Menu{
		Name: "World Settings",
		Mode: MenuOptions,
		Settings: []*Definition{
			NewDefinition("Starting Age", CategorySetting, "Child", "Adult", "Random"),
			NewDefinition("Shuffle Entrances", CategorySetting, onOff()...),
			NewDefinition("Shuffle Dungeon Entrances", CategorySetting, "Off", "On", "On + Ganon"),
			NewDefinition("Shuffle Overworld Entrances", CategorySetting, onOff()...),
			NewDefinition("Shuffle Interior Entrances", CategorySetting, "Off", "Simple", "All"),
			NewDefinition("Shuffle Grotto Entrances", CategorySetting, onOff()...),
			NewDefinition("Ammo Drops", CategorySetting, "On", "On + Bombchu", "Off"),
			NewDefinition("Heart Drops and Refills", CategorySetting, "On", "No Drop", "No Refill", "Off"),
		},
	}

	shuffle := &Menu{
		Name: "Shuffle Settings",
		Mode: MenuOptions,
		Settings: []*Definition{
			NewDefinition("Shuffle Songs", CategorySetting, "Song Locations", "Dungeon Rewards", "Anywhere"),
			NewDefinition("Shopsanity", CategorySetting, "Off", "Shuffled Shops (0 Items)", "Shuffled Shops (4 Items)", "Shuffled Shops (Random)"),
			NewDefinition("Tokensanity", CategorySetting, "Off", "Dungeons", "Overworld", "All Tokens"),
			NewDefinition("Scrub Shuffle", CategorySetting, "Off", "Affordable", "Expensive", "Random Prices"),
			NewDefinition("Shuffle Cows", CategorySetting, onOff()...),
			NewDefinition("Shuffle Kokiri Sword", CategorySetting, onOff()...),
			NewDefinition("Shuffle Ocarinas", CategorySetting, onOff()...),
			NewDefinition("Shuffle Weird Egg", CategorySetting, onOff()...),
			NewDefinition("Shuffle Gerudo Token", CategorySetting, onOff()...),
			NewDefinition("Shuffle Magic Beans", CategorySetting, onOff()...),
		},
	}

	timesavers := &Menu{
		Name: "Timesaver Settings",
		Mode: MenuOptions,
		Settings: []*Definition{
			NewDefinition("Skip Child Stealth", CategorySetting, "Don't Skip", "Skip"),
			NewDefinition("Skip Tower Escape", CategorySetting, "Don't Skip", "Skip"),
			NewDefinition("Skip Epona Race", CategorySetting, "Don't Skip", "Skip"),
			NewDefinition("Free Scarecrow's Song", CategorySetting, onOff()...),
			NewDefinition("Big Poe Target Count", CategorySetting, counted(10)[1:]...),
			NewDefinition("Cucco Count", CategorySetting, counted(7)...),
			NewDefinition("Complete Mask Quest", CategorySetting, onOff()...),
			NewDefinition("Fast Bunny Hood", CategorySetting, onOff()...),
		},
	}

	cosmetics := &Menu{
		Name: "Cosmetic Settings",
		Mode: MenuOptions,
		Settings: []*Definition{
			NewDefinition("Tunic Color", CategoryCosmetic, "Kokiri Green", "Goron Red", "Zora Blue", "Random Choice", "Custom"),
			NewDefinition("Navi Idle Color", CategoryCosmetic, "White", "Green", "Blue", "Random Choice"),
			NewDefinition("Chest Size Matches Contents", CategoryCosmetic, onOff()...),
			NewDefinition("Music Volume", CategoryCosmetic, counted(10)...),
			NewDefinition("Silence Navi", CategoryCosmetic, onOff()...),
		},
	}

	generate := &Menu{
		Name: "Generate",
		Mode: MenuAction,
	}

	return NewRegistry(open, world, shuffle, timesavers, cosmetics, generate)
}
