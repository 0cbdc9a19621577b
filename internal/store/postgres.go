package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/LingoLeap/LingoLeap-backend/internal/database"
	model "github.com/LingoLeap/LingoLeap-backend/internal/models"
	"github.com/LingoLeap/LingoLeap-backend/internal/scanner"
	"github.com/jackc/pgx/v5"
	"github.com/lib/pq"
)

// PostgresProgression est la variante base de données du stockage de
// progression. Même contrat que MemoryProgression : le moteur n'en sait
// rien. Le contexte des requêtes reste court, aucune opération du coeur
// n'est longue.
type PostgresProgression struct{}

func NewPostgresProgression() *PostgresProgression {
	return &PostgresProgression{}
}

func (p *PostgresProgression) Record(email string) (*model.ProgressionRecord, bool, error) {
	var rec model.ProgressionRecord
	err := database.DB.QueryRow(context.Background(),
		`SELECT email, total_xp, weekly_xp, streak_days, last_active
		 FROM progression_records WHERE email=$1`,
		email,
	).Scan(&rec.Email, &rec.TotalXP, &rec.WeeklyXP, &rec.StreakDays, &rec.LastActive)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("could not fetch progression record: %w", err)
	}
	return &rec, true, nil
}

func (p *PostgresProgression) SaveRecord(rec *model.ProgressionRecord) error {
	_, err := database.DB.Exec(context.Background(),
		`INSERT INTO progression_records(email, total_xp, weekly_xp, streak_days, last_active)
		 VALUES($1, $2, $3, $4, $5)
		 ON CONFLICT (email) DO UPDATE
		 SET total_xp=$2, weekly_xp=$3, streak_days=$4, last_active=$5`,
		rec.Email, rec.TotalXP, rec.WeeklyXP, rec.StreakDays, rec.LastActive,
	)
	if err != nil {
		return fmt.Errorf("could not save progression record: %w", err)
	}
	return nil
}

func (p *PostgresProgression) Records() ([]*model.ProgressionRecord, error) {
	rows, err := database.DB.Query(context.Background(),
		`SELECT email, total_xp, weekly_xp, streak_days, last_active
		 FROM progression_records ORDER BY email`,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query progression records: %w", err)
	}
	defer rows.Close()

	var out []*model.ProgressionRecord
	for rows.Next() {
		var rec model.ProgressionRecord
		if err := rows.Scan(&rec.Email, &rec.TotalXP, &rec.WeeklyXP, &rec.StreakDays, &rec.LastActive); err != nil {
			return nil, fmt.Errorf("could not scan progression record: %w", err)
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}

func (p *PostgresProgression) Attempt(email string, lessonID int) (*model.QuizAttempt, bool, error) {
	var att model.QuizAttempt
	err := database.DB.QueryRow(context.Background(),
		`SELECT email, lesson_id, completed, score, attempts, last_attempt
		 FROM quiz_attempts WHERE email=$1 AND lesson_id=$2`,
		email, lessonID,
	).Scan(&att.Email, &att.LessonID, &att.Completed, &att.Score, &att.Attempts, &att.LastAttempt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("could not fetch quiz attempt: %w", err)
	}
	return &att, true, nil
}

func (p *PostgresProgression) SaveAttempt(att *model.QuizAttempt) error {
	_, err := database.DB.Exec(context.Background(),
		`INSERT INTO quiz_attempts(email, lesson_id, completed, score, attempts, last_attempt)
		 VALUES($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (email, lesson_id) DO UPDATE
		 SET completed=$3, score=$4, attempts=$5, last_attempt=$6`,
		att.Email, att.LessonID, att.Completed, att.Score, att.Attempts, att.LastAttempt,
	)
	if err != nil {
		return fmt.Errorf("could not save quiz attempt: %w", err)
	}
	return nil
}

func (p *PostgresProgression) TrackedWeek() (string, error) {
	var week string
	err := database.DB.QueryRow(context.Background(),
		`SELECT value FROM progression_meta WHERE key='tracked_week'`,
	).Scan(&week)

	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("could not fetch tracked week: %w", err)
	}
	return week, nil
}

func (p *PostgresProgression) SetTrackedWeek(week string) error {
	_, err := database.DB.Exec(context.Background(),
		`INSERT INTO progression_meta(key, value) VALUES('tracked_week', $1)
		 ON CONFLICT (key) DO UPDATE SET value=$1`,
		week,
	)
	if err != nil {
		return fmt.Errorf("could not save tracked week: %w", err)
	}
	return nil
}

func (p *PostgresProgression) ResetWeeklyXP() error {
	_, err := database.DB.Exec(context.Background(),
		`UPDATE progression_records SET weekly_xp=0`,
	)
	if err != nil {
		return fmt.Errorf("could not reset weekly xp: %w", err)
	}
	return nil
}

// PostgresDirectory résout les profils du classement depuis la table users
type PostgresDirectory struct{}

func NewPostgresDirectory() *PostgresDirectory {
	return &PostgresDirectory{}
}

func (d *PostgresDirectory) Members(ctx context.Context, emails []string) (map[string]*model.UserProfile, error) {
	if len(emails) == 0 {
		return map[string]*model.UserProfile{}, nil
	}

	rows, err := database.DB.Query(ctx,
		`SELECT id, email, username, avatar, native_language, target_language, level,
			provider, badges, join_date, created_at, updated_at
		 FROM users WHERE email = ANY($1) AND deleted_at IS NULL`,
		emails,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query leaderboard members: %w", err)
	}
	defer rows.Close()

	out := make(map[string]*model.UserProfile, len(emails))
	for rows.Next() {
		user, err := scanner.ScanUserProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan leaderboard member: %w", err)
		}
		out[user.Email] = user
	}
	return out, rows.Err()
}

// PostgresJournal écrit les transactions d'XP dans xp_transactions
type PostgresJournal struct{}

func NewPostgresJournal() *PostgresJournal {
	return &PostgresJournal{}
}

func (j *PostgresJournal) LogXP(ctx context.Context, tx *model.XPTransaction) error {
	tags := tx.Tags
	if tags == nil {
		tags = []string{}
	}
	_, err := database.DB.Exec(ctx,
		`INSERT INTO xp_transactions(email, amount, source, tags, created_at)
		 VALUES($1, $2, $3, $4, $5)`,
		tx.Email, tx.Amount, tx.Source, pq.Array(tags), tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("could not insert xp transaction: %w", err)
	}
	return nil
}
