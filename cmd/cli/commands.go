package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

var maxRanking int

func init() {
	playersCmd.Flags().IntVar(&maxRanking, "max-ranking", 0, "Only include players ranked at or above this bound")
	countryCmd.Flags().IntVar(&maxRanking, "max-ranking", 0, "Only include players ranked at or above this bound")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(routesCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(playerCmd)
	rootCmd.AddCommand(countriesCmd)
	rootCmd.AddCommand(countryCmd)
	rootCmd.AddCommand(nicknamesCmd)
	rootCmd.AddCommand(nicknameCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(statsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the routes the server exposes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/")
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List players within the ranking bound",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/players" + boundQuery())
	},
}

var playerCmd = &cobra.Command{
	Use:   "player <id>",
	Short: "Look up a single player by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/players/" + url.PathEscape(args[0]))
	},
}

var countriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "List the distinct countries in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/countries")
	},
}

var countryCmd = &cobra.Command{
	Use:   "country <term>",
	Short: "Search players by country substring",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/countries/" + url.PathEscape(args[0]) + "/players" + boundQuery())
	},
}

var nicknamesCmd = &cobra.Command{
	Use:   "nicknames",
	Short: "List the distinct nicknames in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/nicknames")
	},
}

var nicknameCmd = &cobra.Command{
	Use:   "nickname <term>",
	Short: "Search players by nickname substring",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/nicknames/" + url.PathEscape(args[0]) + "/players")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Get the persisted lifetime query counters",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/stats")
	},
}

func boundQuery() string {
	if maxRanking > 0 {
		return fmt.Sprintf("?maxRanking=%d", maxRanking)
	}
	return ""
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
