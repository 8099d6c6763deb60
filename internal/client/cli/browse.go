package cli

import (
	"context"
	"flag"
	"strings"

	"github.com/dmitrijs2005/nutrio/internal/client/catalog"
	"github.com/dmitrijs2005/nutrio/internal/client/models"
)

func (a *App) ensureMeals(ctx context.Context) {
	if len(a.catalog.Snapshot().Meals) == 0 {
		a.catalog.FetchMeals(ctx)
	}
}

func (a *App) ensureRestaurants(ctx context.Context) {
	if len(a.catalog.Snapshot().Restaurants) == 0 {
		a.catalog.FetchRestaurants(ctx)
	}
}

// Meals lists meals. Without -t the result is grouped by meal time.
//
//	meals [-q text] [-c category] [-t breakfast|lunch|dinner]
func (a *App) Meals(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("meals", flag.ContinueOnError)
	fs.SetOutput(a.out)
	q := fs.String("q", "", "search text")
	cat := fs.String("c", models.CategoryAll, "category id")
	mt := fs.String("t", "", "meal time")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a.ensureMeals(ctx)
	f := catalog.MealFilter{Query: *q, Category: *cat, MealTime: models.MealTime(strings.ToLower(*mt))}
	meals := a.catalog.Meals(f)

	if f.MealTime != models.MealTimeNone {
		a.println(a.lang.T(string(f.MealTime)))
		a.printMeals(meals)
		return nil
	}

	groups := catalog.GroupByMealTime(meals)
	for _, b := range models.MealTimes {
		if len(groups[b]) == 0 {
			continue
		}
		a.println(a.lang.T(string(b)))
		a.printMeals(groups[b])
	}
	return nil
}

func (a *App) printMeals(meals []models.Meal) {
	for _, m := range meals {
		a.printf("  %-4s %-28s %4d kcal  %-22s %6.2f\n", m.ID, m.Name, m.Calories, m.Restaurant, m.Price)
	}
}

// Restaurants searches restaurants by name or cuisine. Favorites are starred.
func (a *App) Restaurants(ctx context.Context, args []string) error {
	a.ensureRestaurants(ctx)

	rs := a.catalog.Restaurants(strings.Join(args, " "))
	if len(rs) == 0 {
		a.println(a.lang.T("noRestaurantsFound"))
		a.println(a.lang.T("tryDifferentKeywords"))
		return nil
	}

	a.println(a.lang.T("restaurants"))
	for _, r := range rs {
		star := " "
		if r.Favorite {
			star = "*"
		}
		a.printf(" %s %-4s %-26s %s\n", star, r.ID, r.Name, r.CuisineType)
	}
	return nil
}

// Favorite toggles the favorite flag of a restaurant.
func (a *App) Favorite(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("favorite <restaurant-id>")
	}
	a.ensureRestaurants(ctx)

	if a.catalog.ToggleFavorite(ctx, args[0]) {
		a.printf("Restaurant %s added to favorites\n", args[0])
	} else {
		a.printf("Restaurant %s removed from favorites\n", args[0])
	}
	return nil
}

// Language prints the active language or switches to args[0].
func (a *App) Language(ctx context.Context, args []string) error {
	if len(args) == 0 {
		snap := a.lang.Snapshot()
		dir := "ltr"
		if snap.IsRTL {
			dir = "rtl"
		}
		a.printf("%s: %s (%s)\n", a.lang.T("language"), snap.Language, dir)
		a.printf("  en - %s\n  ar - %s\n", a.lang.T("english"), a.lang.T("arabic"))
		return nil
	}

	if err := a.lang.SetLanguage(ctx, strings.ToLower(args[0])); err != nil {
		a.reportError(err)
		return err
	}
	a.printf("%s: %s\n", a.lang.T("language"), a.lang.Language())
	if a.lang.Snapshot().RestartRequired {
		a.println(a.lang.T("restartRequired"))
	}
	return nil
}

// Reset wipes every locally persisted value. The running session is kept
// in memory until exit.
func (a *App) Reset(ctx context.Context, args []string) error {
	if ok, err := a.confirm(args, "Clear all local data?"); err != nil || !ok {
		return err
	}
	if err := a.kv.Clear(ctx); err != nil {
		a.reportError(err)
		return err
	}
	a.println("Local data cleared")
	return nil
}
