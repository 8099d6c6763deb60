package pg

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/nutrio/internal/client/gateway"
	"github.com/dmitrijs2005/nutrio/internal/dbx"
)

type ProfileRepository struct {
	db dbx.DBTX
}

func NewProfileRepository(db dbx.DBTX) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Get(ctx context.Context, id string) (*gateway.ProfileRow, error) {
	query :=
		`SELECT id, name, email, COALESCE(avatar_url, ''),
		        daily_calories_goal, daily_protein_goal, daily_carbs_goal, daily_fat_goal
		 FROM profiles
		 WHERE id = $1`

	p := &gateway.ProfileRow{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Email, &p.AvatarURL,
		&p.DailyCaloriesGoal, &p.DailyProteinGoal, &p.DailyCarbsGoal, &p.DailyFatGoal,
	)
	if err != nil {
		return nil, mapError(gateway.TableProfiles, err)
	}
	return p, nil
}

func (r *ProfileRepository) Insert(ctx context.Context, p gateway.ProfileRow) error {
	query :=
		`INSERT INTO profiles (id, name, email, avatar_url,
		        daily_calories_goal, daily_protein_goal, daily_carbs_goal, daily_fat_goal)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	avatar := sql.NullString{String: p.AvatarURL, Valid: p.AvatarURL != ""}
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.Email, avatar,
		p.DailyCaloriesGoal, p.DailyProteinGoal, p.DailyCarbsGoal, p.DailyFatGoal,
	)
	if err != nil {
		return mapError(gateway.TableProfiles, fmt.Errorf("db error: %w", err))
	}
	return nil
}

// Update writes only the columns set in u. An empty update is a no-op.
func (r *ProfileRepository) Update(ctx context.Context, id string, u gateway.ProfileUpdate) error {
	if u.Empty() {
		return nil
	}

	var sets []string
	var args []any
	set := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if u.Name != nil {
		set("name", *u.Name)
	}
	if u.AvatarURL != nil {
		set("avatar_url", *u.AvatarURL)
	}
	if u.Goals != nil {
		set("daily_calories_goal", u.Goals.Calories)
		set("daily_protein_goal", u.Goals.Protein)
		set("daily_carbs_goal", u.Goals.Carbs)
		set("daily_fat_goal", u.Goals.Fat)
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE profiles SET %s WHERE id = $%d`, strings.Join(sets, ", "), len(args))
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return mapError(gateway.TableProfiles, fmt.Errorf("db error: %w", err))
	}
	return nil
}
