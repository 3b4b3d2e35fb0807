package repositories

import (
	"context"
	"database/sql"

	"github.com/rotisserie/eris"

	"impactio/internal/models"
)

type ConversationRepository interface {
	ListConversations(ctx context.Context) ([]models.Conversation, error)
}

type conversationRepository struct {
	DB *sql.DB
}

func NewConversationRepository(db *sql.DB) ConversationRepository {
	return &conversationRepository{DB: db}
}

func (r *conversationRepository) ListConversations(ctx context.Context) ([]models.Conversation, error) {
	const q = `
		SELECT id, lead_id, created_at
		FROM conversations
	`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, eris.Wrap(err, "conversations: query")
	}
	defer rows.Close()

	out := []models.Conversation{}
	for rows.Next() {
		var (
			c      models.Conversation
			leadID sql.NullString
		)
		if err := rows.Scan(&c.ID, &leadID, &c.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "conversations: scan")
		}
		c.LeadID = nullableString(leadID)
		out = append(out, c)
	}
	return out, eris.Wrap(rows.Err(), "conversations: rows")
}
