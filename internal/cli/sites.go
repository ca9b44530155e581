package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var ErrSiteNotFound = errors.New("site not found")

// Site is a WordPress bookmark. Passwords are never stored.
type Site struct {
	Name     string `yaml:"name"`
	URL      string `yaml:"url"`
	Username string `yaml:"username"`
}

type siteFile struct {
	Sites []Site `yaml:"sites"`
}

// SiteStore keeps bookmarks in a YAML file.
type SiteStore struct {
	path string
}

func NewSiteStore(path string) *SiteStore {
	return &SiteStore{path: path}
}

// DefaultSitesPath is sites.yaml under the user config directory.
func DefaultSitesPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "contentsoftware", "sites.yaml"), nil
}

// List returns no sites when the file does not exist yet.
func (s *SiteStore) List() ([]Site, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read sites: %w", err)
	}

	var f siteFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse sites: %w", err)
	}
	return f.Sites, nil
}

// Add inserts site, replacing any bookmark with the same URL.
func (s *SiteStore) Add(site Site) error {
	site.URL = strings.TrimRight(site.URL, "/")

	sites, err := s.List()
	if err != nil {
		return err
	}

	replaced := false
	for i := range sites {
		if sites[i].URL == site.URL {
			sites[i] = site
			replaced = true
		}
	}
	if !replaced {
		sites = append(sites, site)
	}
	return s.save(sites)
}

// Remove deletes the bookmark matching key by name or URL.
func (s *SiteStore) Remove(key string) error {
	sites, err := s.List()
	if err != nil {
		return err
	}

	key = strings.TrimRight(key, "/")
	kept := sites[:0]
	for _, site := range sites {
		if site.Name != key && site.URL != key {
			kept = append(kept, site)
		}
	}
	if len(kept) == len(sites) {
		return fmt.Errorf("%w: %s", ErrSiteNotFound, key)
	}
	return s.save(kept)
}

// Get finds a bookmark by name or URL.
func (s *SiteStore) Get(key string) (Site, error) {
	sites, err := s.List()
	if err != nil {
		return Site{}, err
	}
	key = strings.TrimRight(key, "/")
	for _, site := range sites {
		if site.Name == key || site.URL == key {
			return site, nil
		}
	}
	return Site{}, fmt.Errorf("%w: %s", ErrSiteNotFound, key)
}

func (s *SiteStore) save(sites []Site) error {
	data, err := yaml.Marshal(siteFile{Sites: sites})
	if err != nil {
		return fmt.Errorf("encode sites: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return os.WriteFile(s.path, data, 0o600)
}

func siteStore() (*SiteStore, error) {
	if flagSitesFile != "" {
		return NewSiteStore(flagSitesFile), nil
	}
	path, err := DefaultSitesPath()
	if err != nil {
		return nil, fmt.Errorf("locate config dir: %w", err)
	}
	return NewSiteStore(path), nil
}

var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "Manage WordPress site bookmarks",
}

var sitesAddCmd = &cobra.Command{
	Use:   "add <name> <url> <username>",
	Short: "Add or update a site bookmark",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := siteStore()
		if err != nil {
			return err
		}
		if err := store.Add(Site{Name: args[0], URL: args[1], Username: args[2]}); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", args[0])
		return nil
	},
}

var sitesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List site bookmarks",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := siteStore()
		if err != nil {
			return err
		}
		sites, err := store.List()
		if err != nil {
			return err
		}
		if len(sites) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No sites saved.")
			return nil
		}

		rows := [][]string{{"NAME", "URL", "USERNAME"}}
		for _, s := range sites {
			rows = append(rows, []string{s.Name, s.URL, s.Username})
		}
		renderTable(cmd.OutOrStdout(), rows)
		return nil
	},
}

var sitesRemoveCmd = &cobra.Command{
	Use:   "remove <name|url>",
	Short: "Remove a site bookmark",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := siteStore()
		if err != nil {
			return err
		}
		if err := store.Remove(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sitesCmd)
	sitesCmd.AddCommand(sitesAddCmd, sitesListCmd, sitesRemoveCmd)
}
