package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/keyblasters/boostbot/internal/models"
)

// embed colors by boost state
const (
	colorOpen     = 0x2ecc71 // green
	colorTeamTake = 0xf1c40f // gold
	colorEditing  = 0xe67e22 // orange
	colorClosed   = 0xe74c3c // red
)

const embedThumbnailURL = "https://logos-download.com/wp-content/uploads/2016/02/WOW_logo-700x701.png"

func boostColor(b *models.Boost) int {
	switch {
	case b.TeamTake != nil && b.Status == models.BoostStatusOpen:
		return colorTeamTake
	case b.Status == models.BoostStatusOpen:
		return colorOpen
	case b.Status == models.BoostStatusEditing:
		return colorEditing
	default:
		return colorClosed
	}
}

// renderEmoji turns a configured emoji ("name:id" or plain unicode) into its
// message form.
func renderEmoji(configured string) string {
	if strings.Contains(configured, ":") {
		return "<:" + configured + ">"
	}
	return configured
}

// buildBoostEmbed renders a boost as an embed. It reads only the boost
// state and the configured emoji map, so redisplays converge on the same
// message regardless of what triggered them.
func (b *Bot) buildBoostEmbed(boost *models.Boost) *discordgo.MessageEmbed {
	armorStack := "no"
	if boost.ArmorStack != nil {
		armorStack = boost.ArmorStack.Mention
	}

	embed := &discordgo.MessageEmbed{
		Title:     boost.AdvertiserName,
		Color:     boostColor(boost),
		Thumbnail: &discordgo.MessageEmbedThumbnail{URL: embedThumbnailURL},
		Footer:    &discordgo.MessageEmbedFooter{Text: boost.UUID},
	}

	addField := func(name, value string, inline bool) {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   name,
			Value:  value,
			Inline: inline,
		})
	}

	addField("Pot", formatGold(boost.Pot), true)
	addField("Booster cut", formatGold(boost.BoosterCut()), true)
	addField("Armor stack", armorStack, false)
	addField("Number of boosts", fmt.Sprintf("%d", boost.BoostsNumber), true)
	addField("Realm name", boost.RealmName, true)
	addField("Dungeon key", boost.Key, false)
	addField("Boosters", b.formatBoosters(boost.Boosters), false)
	if boost.Note != "" {
		addField("Note", "```"+boost.Note+"```", false)
	}
	if boost.TeamTake != nil {
		addField("Team boost", boost.TeamTake.Mention, false)
	}
	addField("Advertiser", boost.AdvertiserMention, true)
	if boost.IncludeAdvertiserInPayout {
		addField("Advertiser cut", formatGold(boost.AdvertiserCutAmount()), true)
	}
	addField("Character to whisper", "/w "+boost.CharacterToWhisper, true)

	return embed
}

// formatBoosters annotates each seated booster with their role emojis.
func (b *Bot) formatBoosters(boosters []*models.Booster) string {
	if len(boosters) == 0 {
		return "nobody signed yet"
	}

	var sb strings.Builder
	for _, booster := range boosters {
		sb.WriteString(booster.Mention)
		if booster.IsDPS {
			sb.WriteString(renderEmoji(b.config.RoleEmojis[roleKeyDPS]))
		}
		if booster.IsHealer {
			sb.WriteString(renderEmoji(b.config.RoleEmojis[roleKeyHealer]))
		}
		if booster.IsTank {
			sb.WriteString(renderEmoji(b.config.RoleEmojis[roleKeyTank]))
		}
		if booster.IsKeyholder {
			sb.WriteString(renderEmoji(b.config.RoleEmojis[roleKeyKeyholder]))
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// buildPayoutEmbed renders the payout summary of a processed boost.
func buildPayoutEmbed(boost *models.Boost, lines []models.PayoutLine) *discordgo.MessageEmbed {
	body := make([]string, 0, len(lines))
	for _, line := range lines {
		body = append(body, fmt.Sprintf("%s: %s", line.Mention, formatGold(line.Amount)))
	}

	return &discordgo.MessageEmbed{
		Title:       "Boost " + boost.UUID + " paid out",
		Color:       colorClosed,
		Description: strings.Join(body, "\n"),
		Footer:      &discordgo.MessageEmbedFooter{Text: boost.UUID},
	}
}

// formatGold renders an amount with thousands separators and a g suffix.
func formatGold(amount int64) string {
	digits := fmt.Sprintf("%d", amount)

	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}

	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	result := strings.Join(groups, ",") + "g"
	if negative {
		result = "-" + result
	}
	return result
}
