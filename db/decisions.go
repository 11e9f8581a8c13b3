package db

import (
	"time"

	"relaybot/model"

	"github.com/google/uuid"
)

// DecisionArchive 实现 moderation.Archiver，把终态审核结果写入 decisions 表。
type DecisionArchive struct{}

func (DecisionArchive) RecordDecision(post *model.PendingPost, adminID, verdict string) error {
	return AddDecision(post.ID, post.SubmitterID, adminID, verdict, time.Now())
}

// AddDecision inserts one archived decision row.
func AddDecision(postID int64, submitterID, adminID, verdict string, decidedAt time.Time) error {
	_, err := DB.Exec(
		"INSERT INTO decisions(id, post_id, submitter_id, admin_id, verdict, decided_at) VALUES(?, ?, ?, ?, ?, ?)",
		uuid.New().String(), postID, submitterID, adminID, verdict, decidedAt.Unix(),
	)
	return err
}

// DecisionsForPost retrieves the archived decisions for a post ID,
// oldest first.
func DecisionsForPost(postID int64) ([]model.Decision, error) {
	rows, err := DB.Query(
		"SELECT id, post_id, submitter_id, COALESCE(admin_id, '') as admin_id, verdict, decided_at FROM decisions WHERE post_id = ? ORDER BY decided_at",
		postID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var decisions []model.Decision
	for rows.Next() {
		var d model.Decision
		if err := rows.Scan(&d.ID, &d.PostID, &d.SubmitterID, &d.AdminID, &d.Verdict, &d.DecidedAt); err != nil {
			return nil, err
		}
		decisions = append(decisions, d)
	}
	return decisions, rows.Err()
}
