package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/nutrio/internal/client/catalog"
	"github.com/dmitrijs2005/nutrio/internal/client/models"
	"github.com/dmitrijs2005/nutrio/internal/client/store"
)

var (
	errNotLoggedIn = errors.New("not logged in")
	errUsage       = errors.New("usage")
)

// readFile is a seam for the avatar command.
var readFile = os.ReadFile

// requireLogin prints the guest notice and reports whether a session exists.
func (a *App) requireLogin() bool {
	if a.isLoggedIn() {
		return true
	}
	a.println(a.lang.T("notLoggedIn"))
	a.println(a.lang.T("pleaseLogin"))
	return false
}

func (a *App) usage(text string) error {
	a.println("Usage: " + text)
	return errUsage
}

// Profile prints the current identity and daily goals.
func (a *App) Profile(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return errNotLoggedIn
	}
	u := a.users.Snapshot().User
	if u == nil {
		return nil
	}

	a.println(a.lang.T("profile"))
	a.printf("  %s <%s>\n", u.Name, u.Email)
	if u.Avatar != "" {
		a.printf("  avatar: %s\n", u.Avatar)
	}
	g := u.DailyGoals
	a.printf("  goals: %d kcal, %dg protein, %dg carbs, %dg fat\n", g.Calories, g.Protein, g.Carbs, g.Fat)
	return nil
}

// Update changes the display name or the daily goals.
func (a *App) Update(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return errNotLoggedIn
	}
	const usage = "update name <name> | update goals <kcal> <protein> <carbs> <fat>"
	if len(args) < 2 {
		return a.usage(usage)
	}

	var u store.UserUpdate
	switch args[0] {
	case "name":
		name := strings.Join(args[1:], " ")
		u.Name = &name
	case "goals":
		n, err := ints(args[1:], 4)
		if err != nil {
			return a.usage(usage)
		}
		u.DailyGoals = &models.Goals{Calories: n[0], Protein: n[1], Carbs: n[2], Fat: n[3]}
	default:
		return a.usage(usage)
	}

	if err := a.users.UpdateUser(ctx, u); err != nil {
		a.reportError(err)
		return err
	}
	return a.Profile(ctx, nil)
}

// Avatar uploads the image at args[0] as the profile picture.
func (a *App) Avatar(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return errNotLoggedIn
	}
	if len(args) != 1 {
		return a.usage("avatar <file>")
	}

	data, err := readFile(args[0])
	if err != nil {
		a.reportError(err)
		return err
	}
	if err := a.users.SetAvatar(ctx, http.DetectContentType(data), data); err != nil {
		a.reportError(err)
		return err
	}
	a.println(a.lang.T("success"))
	return nil
}

// Progress prints the trailing seven days against the daily goals.
func (a *App) Progress(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return errNotLoggedIn
	}
	a.users.FetchNutritionProgress(ctx)

	u := a.users.Snapshot().User
	if u == nil {
		return nil
	}
	a.println(a.lang.T("progress"))
	for _, p := range u.Progress {
		a.printf("  %s  %4d/%d kcal  P %d  C %d  F %d\n",
			p.Date, p.Calories, u.DailyGoals.Calories, p.Protein, p.Carbs, p.Fat)
	}
	return nil
}

// Log adds nutrients to today's entry, either explicit amounts or the macros
// of a catalog meal.
func (a *App) Log(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return errNotLoggedIn
	}
	const usage = "log <kcal> [protein carbs fat] | log meal <meal-id>"
	if len(args) == 0 {
		return a.usage(usage)
	}

	var delta models.Nutrients
	if args[0] == "meal" {
		if len(args) != 2 {
			return a.usage(usage)
		}
		m, ok := a.findMeal(ctx, args[1])
		if !ok {
			a.printf("Meal %s not found\n", args[1])
			return fmt.Errorf("meal %q not found", args[1])
		}
		delta = m.Nutrients()
	} else {
		n, err := ints(args, len(args))
		if err != nil || len(n) > 4 {
			return a.usage(usage)
		}
		n = append(n, 0, 0, 0)
		delta = models.Nutrients{Calories: n[0], Protein: n[1], Carbs: n[2], Fat: n[3]}
	}

	if err := a.users.LogNutrition(ctx, delta); err != nil {
		a.reportError(err)
		return err
	}
	return a.Progress(ctx, nil)
}

func (a *App) findMeal(ctx context.Context, id string) (models.Meal, bool) {
	a.ensureMeals(ctx)
	for _, m := range a.catalog.Meals(catalog.MealFilter{}) {
		if m.ID == id {
			return m, true
		}
	}
	return models.Meal{}, false
}

// ints parses exactly want integers from args.
func ints(args []string, want int) ([]int, error) {
	if len(args) != want {
		return nil, errUsage
	}
	out := make([]int, len(args))
	for i, s := range args {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}
