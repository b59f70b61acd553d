package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gitrdm/ranked-belief/examples/spelling"
)

func spellingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spelling word...",
		Short: "Suggest corrections for misspelled words",
		Long: `spelling ranks dictionary words by how many letters of the typed word
must be given up to reach them. The embedded word list is used unless
--wordlist names a file; --cache keeps results in a local database so
repeated lookups skip the search.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := openDictionary()
			if err != nil {
				return err
			}

			var cache *suggestionCache
			if dir := viper.GetString("cache"); dir != "" {
				cache, err = openSuggestionCache(dir)
				if err != nil {
					return err
				}
				defer cache.Close()
			}

			for _, word := range args {
				suggestions, err := suggestionsFor(dict, cache, word, topN())
				if err != nil {
					return err
				}
				for _, s := range suggestions {
					fmt.Fprintf(cmd.OutOrStdout(), "%d  %s -> %s\n", s.Rank, word, s.Word)
				}
			}
			return nil
		},
	}
	cmd.Flags().String("wordlist", "", "path to a word list file, one word per line")
	cmd.Flags().String("cache", "", "directory for the persistent suggestion cache")
	cobra.CheckErr(viper.BindPFlag("wordlist", cmd.Flags().Lookup("wordlist")))
	cobra.CheckErr(viper.BindPFlag("cache", cmd.Flags().Lookup("cache")))
	return cmd
}

func openDictionary() (*spelling.Dictionary, error) {
	if path := viper.GetString("wordlist"); path != "" {
		slog.Debug("loading word list", "path", path)
		return spelling.LoadDictionary(path)
	}
	return spelling.DefaultDictionary(), nil
}

// suggestionsFor consults the cache, if one is open, before running the
// ranked pattern search.
func suggestionsFor(dict *spelling.Dictionary, cache *suggestionCache, word string, limit int) ([]suggestion, error) {
	if cache != nil {
		cached, ok, err := cache.Get(word, limit)
		if err != nil {
			return nil, err
		}
		if ok {
			slog.Debug("suggestion cache hit", "word", word)
			return cached, nil
		}
	}

	pairs, err := dict.Suggest(word, limit)
	if err != nil {
		return nil, err
	}
	suggestions := make([]suggestion, len(pairs))
	for i, p := range pairs {
		v, err := p.Rank.Value()
		if err != nil {
			return nil, err
		}
		suggestions[i] = suggestion{Word: p.Value, Rank: v}
	}

	if cache != nil {
		if err := cache.Put(word, limit, suggestions); err != nil {
			return nil, err
		}
	}
	return suggestions, nil
}
