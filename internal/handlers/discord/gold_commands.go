package discord

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/keyblasters/boostbot/internal/models"
	aliasRepo "github.com/keyblasters/boostbot/internal/repositories/alias"
	"github.com/keyblasters/boostbot/internal/services/ledger"
)

const defaultListLimit = 10

func (c *commandContext) requireManagement(b *Bot) error {
	if !b.isManagement(c.session, c.message.GuildID, c.message.Member) {
		return errors.New("you are not allowed to use this command")
	}
	return nil
}

func (c *commandContext) requireBooster(b *Bot) error {
	if b.isManagement(c.session, c.message.GuildID, c.message.Member) {
		return nil
	}
	if !b.isBooster(c.session, c.message.GuildID, c.message.Member) {
		return errors.New("you are not allowed to use this command")
	}
	return nil
}

// handleGold records a gold transaction for one or more mentioned users.
//
// Format: gold add|deduct|payout @user1 ... @userN amount [comment]
func (b *Bot) handleGold(c *commandContext) error {
	if err := c.requireManagement(b); err != nil {
		return err
	}

	if len(c.args) < 3 {
		return errors.New("expected: add|deduct|payout @user ... amount [comment]")
	}

	txnType := models.TransactionType(strings.ToLower(c.args[0]))

	var userIDs []string
	var mentions []string
	rest := 1
	for rest < len(c.args) {
		userID, ok := parseUserMention(c.args[rest])
		if !ok {
			break
		}
		userIDs = append(userIDs, userID)
		mentions = append(mentions, c.args[rest])
		rest++
	}
	if len(userIDs) == 0 {
		return errors.New("no user mentions found")
	}
	if rest >= len(c.args) {
		return errors.New("gold amount not found in arguments")
	}

	amount, err := models.ParseGoldAmount(c.args[rest])
	if err != nil {
		return err
	}
	comment := strings.Join(c.args[rest+1:], " ")

	var results []string
	for i, userID := range userIDs {
		line := b.recordGoldFor(c, txnType, userID, mentions[i], amount, comment)
		results = append(results, line)
	}

	return c.replyEmbed(strings.Join(results, "\n"))
}

// recordGoldFor registers the recipient if needed and records one
// transaction, returning the per-recipient result line.
func (b *Bot) recordGoldFor(c *commandContext, txnType models.TransactionType, userID, mention string, amount int64, comment string) string {
	failure := func(err error) string {
		return fmt.Sprintf(":x:%s: Transaction with type %s, amount %d failed: %v.", mention, txnType, amount, err)
	}

	if err := b.registerFromNickname(c, userID); err != nil {
		return failure(err)
	}

	_, err := b.ledgerService.RecordGold(c.ctx, &ledger.RecordGoldInput{
		Type:       txnType,
		Recipients: []ledger.Recipient{{UserID: userID, Mention: mention}},
		AuthorID:   c.message.Author.ID,
		Amount:     amount,
		GuildID:    c.message.GuildID,
		Comment:    comment,
	})
	if err != nil {
		return failure(err)
	}

	return fmt.Sprintf(":white_check_mark:%s: Transaction with type %s, amount %d was processed.", mention, txnType, amount)
}

// registerFromNickname binds a user to the realm parsed from their
// "<character>-<realm>" guild nickname.
func (b *Bot) registerFromNickname(c *commandContext, userID string) error {
	member, err := c.session.GuildMember(c.message.GuildID, userID)
	if err != nil {
		return fmt.Errorf("failed to fetch member: %w", err)
	}

	nick := displayName(member)
	realmPart, ok := parseNickRealm(nick)
	if !ok {
		return fmt.Errorf("nickname %q does not end with -<realm>", nick)
	}

	realmName, err := b.resolver.Resolve(c.ctx, realmPart)
	if err != nil {
		return err
	}

	return b.ledgerService.RegisterUser(c.ctx, &ledger.RegisterUserInput{
		UserID:    userID,
		RealmName: realmName,
	})
}

func (b *Bot) handleBalance(c *commandContext) error {
	if err := c.requireBooster(b); err != nil {
		return err
	}

	return b.replyBalance(c, c.message.Author.ID, c.message.Author.Mention())
}

func (b *Bot) handleAdminBalance(c *commandContext) error {
	if err := c.requireManagement(b); err != nil {
		return err
	}

	if len(c.args) < 1 {
		return errors.New("expected a user mention")
	}
	userID, ok := parseUserMention(c.args[0])
	if !ok {
		return fmt.Errorf("%s is not a user mention", c.args[0])
	}

	return b.replyBalance(c, userID, c.args[0])
}

func (b *Bot) replyBalance(c *commandContext, userID, mention string) error {
	out, err := b.ledgerService.Balance(c.ctx, &ledger.BalanceInput{
		UserID:  userID,
		GuildID: c.message.GuildID,
	})
	if err != nil {
		return err
	}

	line := fmt.Sprintf("%s balance: %d", mention, out.Total)
	if realm, err := b.ledgerService.UserRealm(c.ctx, &ledger.UserRealmInput{UserID: userID}); err == nil {
		line += " (" + realm.RealmName + ")"
	}

	return c.replyEmbed(line)
}

func (b *Bot) handleListTransactions(c *commandContext) error {
	if err := c.requireBooster(b); err != nil {
		return err
	}

	limit := parseLimit(c.args, 0)
	return b.replyTransactions(c, c.message.Author.ID, limit)
}

func (b *Bot) handleAdminListTransactions(c *commandContext) error {
	if err := c.requireManagement(b); err != nil {
		return err
	}

	if len(c.args) < 1 {
		return errors.New("expected a user mention")
	}
	userID, ok := parseUserMention(c.args[0])
	if !ok {
		return fmt.Errorf("%s is not a user mention", c.args[0])
	}

	limit := parseLimit(c.args, 1)
	return b.replyTransactions(c, userID, limit)
}

func (b *Bot) replyTransactions(c *commandContext, userID string, limit int) error {
	out, err := b.ledgerService.ListTransactions(c.ctx, &ledger.ListTransactionsInput{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		return err
	}

	if len(out.Transactions) == 0 {
		return c.replyEmbed("No transactions found.")
	}

	lines := make([]string, 0, len(out.Transactions))
	for _, txn := range out.Transactions {
		line := fmt.Sprintf("%s %s %d", txn.Timestamp.Format(time.DateTime), txn.Type, txn.Amount)
		if txn.Comment != "" {
			line += " (" + txn.Comment + ")"
		}
		lines = append(lines, line)
	}

	return c.replyEmbed(strings.Join(lines, "\n"))
}

// parseLimit reads an optional positive limit argument at idx, falling back
// to the default.
func parseLimit(args []string, idx int) int {
	if idx >= len(args) {
		return defaultListLimit
	}
	limit, err := strconv.Atoi(args[idx])
	if err != nil || limit < 1 {
		return defaultListLimit
	}
	return limit
}

func (b *Bot) handleTop(c *commandContext) error {
	if err := c.requireBooster(b); err != nil {
		return err
	}

	limit := parseLimit(c.args, 0)

	// optional role mentions restrict the board to holders of those roles
	var roleIDs []string
	for _, arg := range c.args {
		if roleID, ok := parseRoleMention(arg); ok {
			roleIDs = append(roleIDs, roleID)
		}
	}

	out, err := b.ledgerService.TopBoosters(c.ctx, &ledger.TopBoostersInput{
		GuildID: c.message.GuildID,
		Limit:   limit + len(roleIDs)*limit, // over-fetch so filtering still fills the board
	})
	if err != nil {
		return err
	}

	entries := out.Boosters
	if len(roleIDs) > 0 {
		entries = b.filterTopByRoles(c, entries, roleIDs)
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}

	return c.replyEmbed(formatTopBoard(entries))
}

func (b *Bot) filterTopByRoles(c *commandContext, entries []ledger.TopBoosterEntry, roleIDs []string) []ledger.TopBoosterEntry {
	var kept []ledger.TopBoosterEntry
	for _, entry := range entries {
		member, err := c.session.GuildMember(c.message.GuildID, entry.UserID)
		if err != nil {
			continue
		}
		for _, roleID := range roleIDs {
			if memberHasRoleID(member, roleID) {
				kept = append(kept, entry)
				break
			}
		}
	}
	return kept
}

func (b *Bot) handleRealmTop(c *commandContext) error {
	if err := c.requireBooster(b); err != nil {
		return err
	}

	if len(c.args) < 1 {
		return errors.New("expected a realm name")
	}

	realmName, err := b.resolver.Resolve(c.ctx, c.args[0])
	if err != nil {
		return err
	}

	out, err := b.ledgerService.TopBoosters(c.ctx, &ledger.TopBoostersInput{
		GuildID:   c.message.GuildID,
		RealmName: realmName,
		Limit:     parseLimit(c.args, 1),
	})
	if err != nil {
		return err
	}

	return c.replyEmbed(realmName + " top:\n" + formatTopBoard(out.Boosters))
}

func formatTopBoard(entries []ledger.TopBoosterEntry) string {
	if len(entries) == 0 {
		return "Nothing to show yet."
	}

	lines := make([]string, 0, len(entries))
	for i, entry := range entries {
		lines = append(lines, fmt.Sprintf("%d. <@%s>: %d", i+1, entry.UserID, entry.Total))
	}
	return strings.Join(lines, "\n")
}

func (b *Bot) handleAlias(c *commandContext) error {
	if err := c.requireManagement(b); err != nil {
		return err
	}

	if len(c.args) < 2 {
		return errors.New("expected: alias realm-name [overwrite]")
	}

	aliasName := c.args[0]
	realmName := c.args[1]
	overwrite := len(c.args) > 2 && strings.EqualFold(c.args[2], "overwrite")

	err := b.resolver.SetAlias(c.ctx, aliasName, realmName, overwrite)
	if errors.Is(err, aliasRepo.ErrAliasExists) {
		return c.reply(fmt.Sprintf("Alias %q already exists. Repeat with \"overwrite\" to replace it.", aliasName))
	}
	if err != nil {
		return err
	}

	return c.replyEmbed(fmt.Sprintf("Alias %q -> %q stored.", aliasName, realmName))
}

func (b *Bot) handleRemoveUser(c *commandContext) error {
	if err := c.requireManagement(b); err != nil {
		return err
	}

	if len(c.args) < 1 {
		return errors.New("expected a user mention or ID")
	}

	userID, ok := parseUserMention(c.args[0])
	if !ok {
		userID = c.args[0]
	}

	err := b.ledgerService.RemoveUser(c.ctx, &ledger.RemoveUserInput{UserID: userID})
	if err != nil {
		return err
	}

	return c.replyEmbed(fmt.Sprintf("User %s removed.", c.args[0]))
}

func (b *Bot) handleAbout(c *commandContext) error {
	return c.reply("Key Blasters boosting bot")
}
