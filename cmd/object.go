package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"object-manager/core/config"
	"object-manager/core/logger"
	"object-manager/feature/objects"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	objectBase      string
	objectMime      string
	objectTags      map[string]string
	objectRecursive bool
)

// objectCmd represents the object command
var objectCmd = &cobra.Command{
	Use:   "object",
	Short: "Operate on stored objects",
	Long:  `Put, get, stat, list, tag-inspect and delete objects in the configured bucket.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// objectService loads the configuration and builds the object service.
func objectService() (*objects.Service, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	svc, err := objects.NewServiceFromConfig(cfg.Storage, logg)
	if err != nil {
		return nil, nil, err
	}
	return svc, logg, nil
}

// putCmd represents the object put command
var putCmd = &cobra.Command{
	Use:   "put <identifier> <localfile>",
	Short: "Upload a local file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, logg, err := objectService()
		if err != nil {
			return err
		}
		if err := svc.PutFile(cmd.Context(), objectBase, args[0], args[1], objectMime, objectTags); err != nil {
			return err
		}
		logg.Info("Uploaded", zap.String("identifier", args[0]), zap.String("base", objectBase))
		return nil
	},
}

// getCmd represents the object get command
var getCmd = &cobra.Command{
	Use:   "get <identifier> <localfile>",
	Short: "Download an object into a local file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, logg, err := objectService()
		if err != nil {
			return err
		}
		desc, err := svc.GetFile(cmd.Context(), objectBase, args[0], args[1])
		if err != nil {
			return err
		}
		if desc == nil {
			logg.Warn("Object not found", zap.String("identifier", args[0]), zap.String("base", objectBase))
			return nil
		}
		logg.Info("Downloaded", zap.String("path", desc.Path), zap.Int64("size", desc.Size))
		return nil
	},
}

// statCmd represents the object stat command
var statCmd = &cobra.Command{
	Use:   "stat <identifier>",
	Short: "Print object metadata",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, logg, err := objectService()
		if err != nil {
			return err
		}
		desc, err := svc.Stat(cmd.Context(), objectBase, args[0])
		if err != nil {
			return err
		}
		if desc == nil {
			logg.Warn("Object not found", zap.String("identifier", args[0]), zap.String("base", objectBase))
			return nil
		}
		out, _ := json.MarshalIndent(desc, "", "  ")
		fmt.Println(string(out))
		return nil
	},
}

// tagsCmd represents the object tags command
var tagsCmd = &cobra.Command{
	Use:   "tags <identifier>",
	Short: "Print object tags",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, logg, err := objectService()
		if err != nil {
			return err
		}
		tagMap, err := svc.Tags(cmd.Context(), objectBase, args[0])
		if err != nil {
			return err
		}
		if tagMap == nil {
			logg.Warn("Object not found or untagged", zap.String("identifier", args[0]), zap.String("base", objectBase))
			return nil
		}
		out, _ := json.MarshalIndent(tagMap, "", "  ")
		fmt.Println(string(out))
		return nil
	},
}

// rmCmd represents the object rm command
var rmCmd = &cobra.Command{
	Use:   "rm <identifier>",
	Short: "Delete a single object",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, logg, err := objectService()
		if err != nil {
			return err
		}
		deleted, err := svc.Delete(cmd.Context(), objectBase, args[0])
		if err != nil {
			return err
		}
		logg.Info("Delete finished", zap.String("identifier", args[0]), zap.Bool("deleted", deleted))
		return nil
	},
}

// rmdirCmd represents the object rmdir command
var rmdirCmd = &cobra.Command{
	Use:   "rmdir <prefix>",
	Short: "Delete every object under a prefix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, logg, err := objectService()
		if err != nil {
			return err
		}
		deleted, err := svc.DeleteFolder(cmd.Context(), args[0])
		logg.Info("Folder delete finished", zap.String("prefix", args[0]), zap.Int("deleted", deleted))
		// Partial failures are reported after the traversal completed.
		return err
	},
}

// lsCmd represents the object ls command
var lsCmd = &cobra.Command{
	Use:   "ls [prefix]",
	Short: "List objects under a prefix",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := objectService()
		if err != nil {
			return err
		}
		prefix := ""
		if len(args) > 0 {
			prefix = args[0]
		}
		for desc := range svc.List(cmd.Context(), prefix, objectRecursive) {
			if desc.Err != nil {
				return desc.Err
			}
			fmt.Fprintf(os.Stdout, "%12d  %s  %s\n", desc.Size, desc.LastModified.Format("2006-01-02 15:04:05"), desc.Path)
		}
		return nil
	},
}

// existsCmd represents the object exists command
var existsCmd = &cobra.Command{
	Use:   "exists [identifier]",
	Short: "Check whether an object or folder exists",
	Long:  `With an identifier, checks the object at base/identifier. Without one, checks whether the base prefix has at least one entry.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := objectService()
		if err != nil {
			return err
		}
		identifier := ""
		if len(args) > 0 {
			identifier = args[0]
		}
		exists, err := svc.Exists(cmd.Context(), objectBase, identifier)
		if err != nil {
			return err
		}
		fmt.Println(exists)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(objectCmd)
	objectCmd.AddCommand(putCmd, getCmd, statCmd, tagsCmd, rmCmd, rmdirCmd, lsCmd, existsCmd)

	objectCmd.PersistentFlags().StringVar(&objectBase, "base", "", "Base path (prefix) for the virtual path")
	putCmd.Flags().StringVar(&objectMime, "content-type", "application/octet-stream", "Content type of the uploaded object")
	putCmd.Flags().StringToStringVar(&objectTags, "tag", nil, "Object tags (key=value, repeatable)")
	lsCmd.Flags().BoolVar(&objectRecursive, "recursive", false, "Recurse into the subtree")
}
