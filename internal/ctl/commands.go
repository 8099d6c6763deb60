package ctl

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrijs2005/nutrio/internal/buildinfo"
	"github.com/dmitrijs2005/nutrio/internal/client/catalog"
	"github.com/dmitrijs2005/nutrio/internal/client/gateway"
	"github.com/dmitrijs2005/nutrio/internal/client/mocks"
	"github.com/dmitrijs2005/nutrio/internal/client/models"
	"github.com/dmitrijs2005/nutrio/internal/client/repositories/metadata"
	"github.com/spf13/cobra"
)

func newMigrateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the backend schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return e.withDB(ctx, func(db *sql.DB) error {
				if err := migrate(ctx, db); err != nil {
					return err
				}
				e.log.Info(ctx, "migrations applied")
				fmt.Fprintln(out(cmd), "Migrations applied")
				return nil
			})
		},
	}
}

func newSeedCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Upsert the built-in restaurants and meals into the backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			meals, restaurants := mocks.Meals(), mocks.Restaurants()
			return e.withDB(ctx, func(db *sql.DB) error {
				if err := seedCatalog(ctx, db, meals, restaurants); err != nil {
					return err
				}
				fmt.Fprintf(out(cmd), "Seeded %d restaurants and %d meals\n", len(restaurants), len(meals))
				return nil
			})
		},
	}
}

func newPlansCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plans",
		Short: "List subscription plans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := out(cmd)
			fmt.Fprintln(w, "ID\tNAME\tDURATION\tPRICE\tGYM\tMEALS")
			for _, p := range mocks.Plans() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%t\t%d\n",
					p.ID, p.Name, p.Duration, p.Price, p.GymAccess, p.Duration.MealsIncluded())
			}
			return nil
		},
	}
}

func newMealsCmd(e *env) *cobra.Command {
	var f catalog.MealFilter
	var mealTime string

	cmd := &cobra.Command{
		Use:   "meals",
		Short: "List catalog meals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f.MealTime = models.MealTime(strings.ToLower(mealTime))
			return e.withCatalog(cmd.Context(), func(c gateway.CatalogRepository) error {
				meals, err := c.ListMeals(cmd.Context())
				if err != nil {
					return err
				}
				w := out(cmd)
				fmt.Fprintln(w, "ID\tNAME\tKCAL\tP\tC\tF\tTIME\tRESTAURANT\tPRICE")
				for _, m := range catalog.FilterMeals(meals, f) {
					fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%s\t%s\t%.2f\n",
						m.ID, m.Name, m.Calories, m.Protein, m.Carbs, m.Fat, catalog.MealTimeOf(m), m.Restaurant, m.Price)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&f.Query, "query", "q", "", "match name, description or restaurant")
	cmd.Flags().StringVarP(&f.Category, "category", "c", models.CategoryAll, "category id")
	cmd.Flags().StringVarP(&mealTime, "time", "t", "", "breakfast, lunch or dinner")
	return cmd
}

func newRestaurantsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "restaurants [query]",
		Short: "List catalog restaurants matching query by name or cuisine",
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.withCatalog(cmd.Context(), func(c gateway.CatalogRepository) error {
				rs, err := c.ListRestaurants(cmd.Context())
				if err != nil {
					return err
				}
				w := out(cmd)
				fmt.Fprintln(w, "ID\tNAME\tCUISINE")
				for _, r := range catalog.FilterRestaurants(rs, strings.Join(args, " ")) {
					fmt.Fprintf(w, "%s\t%s\t%s\n", r.ID, r.Name, r.CuisineType)
				}
				return nil
			})
		},
	}
}

func newLocalCmd(e *env) *cobra.Command {
	local := &cobra.Command{
		Use:   "local",
		Short: "Inspect or wipe the client's local state",
	}

	withKV := func(cmd *cobra.Command, run func(metadata.Repository) error) error {
		db, err := openLocalDB(cmd.Context(), e.cfg.LocalDBPath)
		if err != nil {
			return err
		}
		defer db.Close()
		return run(metadata.NewSQLiteRepository(db))
	}

	dump := &cobra.Command{
		Use:   "dump",
		Short: "Print every persisted key and value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withKV(cmd, func(kv metadata.Repository) error {
				all, err := kv.List(cmd.Context())
				if err != nil {
					return err
				}
				keys := make([]string, 0, len(all))
				for k := range all {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				for _, k := range keys {
					fmt.Fprintf(out(cmd), "%s\t%s\n", k, all[k])
				}
				return nil
			})
		},
	}

	del := &cobra.Command{
		Use:   "delete <key>",
		Short: "Remove one persisted key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withKV(cmd, func(kv metadata.Repository) error {
				if err := kv.Delete(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(out(cmd), "Deleted %q\n", args[0])
				return nil
			})
		},
	}

	wipe := &cobra.Command{
		Use:   "clear",
		Short: "Remove every persisted key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withKV(cmd, func(kv metadata.Repository) error {
				if err := kv.Clear(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(out(cmd), "Local state cleared")
				return nil
			})
		},
	}

	local.AddCommand(dump, del, wipe)
	return local
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			buildinfo.PrintBuildData(out(cmd))
		},
	}
}
