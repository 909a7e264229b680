package realms

import (
	"context"
	"errors"
	"fmt"

	"github.com/sahilm/fuzzy"

	aliasRepo "github.com/keyblasters/boostbot/internal/repositories/alias"
)

// euRealmNames is the set of realm names accepted for buyers and boosters
var euRealmNames = []string{
	"Aegwynn", "Aerie Peak", "Agamaggan", "Aggra (Português)", "Aggramar", "Ahn'Qiraj", "Al'Akir",
	"Alexstrasza", "Alleria", "Alonsus", "Aman'Thul", "Ambossar", "Anachronos", "Anetheron",
	"Antonidas", "Anub'arak", "Arak-arahm", "Arathi", "Arathor", "Archimonde", "Area 52",
	"Argent Dawn", "Arthas", "Arygos", "Ashenvale", "Aszune", "Auchindoun", "Azjol-Nerub",
	"Azshara", "Azuregos", "Azuremyst", "Baelgun", "Balnazzar", "Blackhand", "Blackmoore",
	"Blackrock", "Blackscar", "Blade's Edge", "Bladefist", "Bloodfeather", "Bloodhoof",
	"Bloodscalp", "Blutkessel", "Booty Bay", "Borean Tundra", "Boulderfist", "Bronze Dragonflight",
	"Bronzebeard", "Burning Blade", "Burning Legion", "Burning Steppes", "C'Thun",
	"Chamber of Aspects", "Chants éternels", "Cho'gall", "Chromaggus", "Colinas Pardas",
	"Confrérie du Thorium", "Conseil des Ombres", "Crushridge", "Culte de la Rive noire",
	"Daggerspine", "Dalaran", "Dalvengyr", "Darkmoon Faire", "Darksorrow", "Darkspear",
	"Das Konsortium", "Das Syndikat", "Deathguard", "Deathweaver", "Deathwing", "Deepholm",
	"Defias Brotherhood", "Dentarg", "Der Mithrilorden", "Der Rat von Dalaran",
	"Der abyssische Rat", "Destromath", "Dethecus", "Die Aldor", "Die Arguswacht",
	"Die Nachtwache", "Die Silberne Hand", "Die Todeskrallen", "Die ewige Wacht", "Doomhammer",
	"Draenor", "Dragonblight", "Dragonmaw", "Drak'thul", "Drek'Thar", "Dun Modr", "Dun Morogh",
	"Dunemaul", "Durotan", "Earthen Ring", "Echsenkessel", "Eitrigg", "Eldre'Thalas", "Elune",
	"Emerald Dream", "Emeriss", "Eonar", "Eredar", "Eversong", "Executus", "Exodar",
	"Festung der Stürme", "Fordragon", "Forscherliga", "Frostmane", "Frostmourne",
	"Frostwhisper", "Frostwolf", "Galakrond", "Garona", "Garrosh", "Genjuros", "Ghostlands",
	"Gilneas", "Goldrinn", "Gordunni", "Gorgonnash", "Greymane", "Grim Batol", "Grom",
	"Gul'dan", "Hakkar", "Haomarush", "Hellfire", "Hellscream", "Howling Fjord", "Hyjal",
	"Illidan", "Jaedenar", "Kael'thas", "Karazhan", "Kargath", "Kazzak", "Kel'Thuzad",
	"Khadgar", "Khaz Modan", "Khaz'goroth", "Kil'jaeden", "Kilrogg", "Kirin Tor", "Kor'gall",
	"Krag'jin", "Krasus", "Kul Tiras", "Kult der Verdammten", "La Croisade écarlate",
	"Laughing Skull", "Les Clairvoyants", "Les Sentinelles", "Lich King", "Lightbringer",
	"Lightning's Blade", "Lordaeron", "Los Errantes", "Lothar", "Madmortem", "Magtheridon",
	"Mal'Ganis", "Malfurion", "Malorne", "Malygos", "Mannoroth", "Marécage de Zangar",
	"Mazrigos", "Medivh", "Minahonda", "Moonglade", "Mug'thol", "Nagrand", "Nathrezim",
	"Naxxramas", "Nazjatar", "Nefarian", "Nemesis", "Neptulon", "Ner'zhul", "Nera'thor",
	"Nethersturm", "Nordrassil", "Norgannon", "Nozdormu", "Onyxia", "Outland", "Perenolde",
	"Pozzo dell'Eternità", "Proudmoore", "Quel'Thalas", "Ragnaros", "Rajaxx", "Rashgarroth",
	"Ravencrest", "Ravenholdt", "Razuvious", "Rexxar", "Runetotem", "Sanguino", "Sargeras",
	"Saurfang", "Scarshield Legion", "Sen'jin", "Shadowsong", "Shattered Halls",
	"Shattered Hand", "Shattrath", "Shen'dralar", "Silvermoon", "Sinstralis", "Skullcrusher",
	"Soulflayer", "Spinebreaker", "Sporeggar", "Steamwheedle Cartel", "Stormrage",
	"Stormreaver", "Stormscale", "Sunstrider", "Suramar", "Sylvanas", "Taerar", "Talnivarr",
	"Tarren Mill", "Teldrassil", "Temple noir", "Terenas", "Terokkar", "Terrordar",
	"The Maelstrom", "The Sha'tar", "The Venture Co", "Theradras", "Thermaplugg", "Thrall",
	"Throk'Feroth", "Thunderhorn", "Tichondrius", "Tirion", "Todeswache", "Trollbane",
	"Turalyon", "Twilight's Hammer", "Twisting Nether", "Tyrande", "Uldaman", "Ulduar",
	"Uldum", "Un'Goro", "Varimathras", "Vashj", "Vek'lor", "Vek'nilash", "Vol'jin",
	"Wildhammer", "Wrathbringer", "Xavius", "Ysera", "Ysondre", "Zenedar",
	"Zirkel des Cenarius", "Zul'jin", "Zuluhed",
}

var knownRealms = func() map[string]struct{} {
	set := make(map[string]struct{}, len(euRealmNames))
	for _, name := range euRealmNames {
		set[name] = struct{}{}
	}
	return set
}()

// UnknownRealmError is a validation error carrying a "did you mean" suggestion
type UnknownRealmError struct {
	// Name is the rejected input
	Name string

	// Suggestion is the closest known realm name, if any
	Suggestion string
}

func (e *UnknownRealmError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%q is not a known EU realm name. Did you mean %q?", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("%q is not a known EU realm name", e.Name)
}

// IsKnown reports whether name is a canonical EU realm name
func IsKnown(name string) bool {
	_, ok := knownRealms[name]
	return ok
}

// Suggest returns the known realm name closest to the input, or empty when
// nothing resembles it
func Suggest(name string) string {
	matches := fuzzy.Find(name, euRealmNames)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}

// Config holds configuration for the realm resolver
type Config struct {
	// AliasRepo resolves stored realm aliases
	AliasRepo aliasRepo.Repository
}

// Resolver validates realm names against the known set, with alias fallback
type Resolver struct {
	aliases aliasRepo.Repository
}

// NewResolver creates a new realm resolver
func NewResolver(cfg *Config) (*Resolver, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.AliasRepo == nil {
		return nil, errors.New("alias repository cannot be nil")
	}

	return &Resolver{
		aliases: cfg.AliasRepo,
	}, nil
}

// Resolve returns the canonical realm name for the input: the input itself
// when already canonical, the aliased realm when a stored alias matches, and
// an UnknownRealmError with a suggestion otherwise.
func (r *Resolver) Resolve(ctx context.Context, name string) (string, error) {
	if IsKnown(name) {
		return name, nil
	}

	output, err := r.aliases.GetAlias(ctx, &aliasRepo.GetAliasInput{Alias: name})
	if err == nil && IsKnown(output.RealmName) {
		return output.RealmName, nil
	}
	if err != nil && !errors.Is(err, aliasRepo.ErrAliasNotFound) {
		return "", fmt.Errorf("failed to resolve realm alias: %w", err)
	}

	return "", &UnknownRealmError{
		Name:       name,
		Suggestion: Suggest(name),
	}
}

// SetAlias stores an alias for a canonical realm name. ErrAliasExists from the
// repository is passed through so the caller can ask about overwriting.
func (r *Resolver) SetAlias(ctx context.Context, aliasName, realmName string, overwrite bool) error {
	if !IsKnown(realmName) {
		return &UnknownRealmError{
			Name:       realmName,
			Suggestion: Suggest(realmName),
		}
	}

	return r.aliases.SetAlias(ctx, &aliasRepo.SetAliasInput{
		Alias:     aliasName,
		RealmName: realmName,
		Overwrite: overwrite,
	})
}
