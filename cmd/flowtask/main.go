// Command flowtask runs a single Dropbox task from a YAML definition file,
// outside a full engine deployment. It wires a local runner with disk-backed
// internal storage by default, or an S3-compatible bucket when configured.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	plugin "github.com/flowmech/flow-plugin-dropbox"
	"github.com/flowmech/flow-plugin-dropbox/runner"
	"github.com/flowmech/flow-plugin-dropbox/runner/storage"
	"github.com/flowmech/flow-plugin-dropbox/runner/storage/local"
	"github.com/flowmech/flow-plugin-dropbox/runner/storage/minio"
)

var (
	cfgFile    string
	taskFile   string
	taskVars   map[string]string
	storageDir string

	rootCmd = &cobra.Command{
		Use:   "flowtask",
		Short: "Run Dropbox workflow tasks from the command line",
		Long: `flowtask executes one task of the Dropbox plugin from a YAML
definition file, using a local runner with disk-backed internal storage.

Definition files look like flow task blocks:

  id: move_report
  type: dropbox.files.Move
  accessToken: "{{ .dropboxToken }}"
  from: "/source/report.csv"
  to: "/archive/report_q1.csv"

Template variables come from --var flags and the "vars" section of the
config file.`,
	}

	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run a task definition",
		RunE:  runTask,
	}

	typesCmd = &cobra.Command{
		Use:   "types",
		Short: "List the task types this plugin provides",
		Run: func(_ *cobra.Command, _ []string) {
			for _, taskType := range plugin.Types() {
				fmt.Println(taskType)
			}
		},
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.flowtask.yaml)")

	runCmd.Flags().StringVarP(&taskFile, "file", "f", "", "task definition file (YAML)")
	runCmd.Flags().StringToStringVarP(&taskVars, "var", "v", nil, "template variable, repeatable (key=value)")
	runCmd.Flags().StringVar(&storageDir, "storage-dir", "", "internal storage directory (default is $HOME/.flowtask/storage)")
	_ = runCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(runCmd, typesCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".flowtask")
	}

	viper.SetEnvPrefix("FLOWTASK")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

func runTask(cmd *cobra.Command, _ []string) error {
	definition := viper.New()
	definition.SetConfigFile(taskFile)
	if err := definition.ReadInConfig(); err != nil {
		return fmt.Errorf("read task definition: %w", err)
	}

	taskType := definition.GetString("type")
	if taskType == "" {
		return fmt.Errorf("task definition %s has no 'type'", taskFile)
	}

	task, err := plugin.New(taskType)
	if err != nil {
		return err
	}
	if err := definition.Unmarshal(task); err != nil {
		return fmt.Errorf("decode task definition: %w", err)
	}

	store, err := openStorage(cmd)
	if err != nil {
		return err
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Str("task", definition.GetString("id")).Logger()

	rc := runner.NewContext(
		runner.WithVars(collectVars()),
		runner.WithLogger(logger),
		runner.WithStorage(store),
	)

	out, err := plugin.Run(cmd.Context(), rc, task)
	if err != nil {
		color.Red("✖ %s failed: %v", taskType, err)
		return err
	}

	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode task output: %w", err)
	}

	color.Green("✔ %s completed", taskType)
	fmt.Println(string(encoded))

	return nil
}

// collectVars merges template variables from the config file's "vars"
// section with --var flags; flags win.
func collectVars() map[string]any {
	vars := make(map[string]any)
	for key, value := range viper.GetStringMap("vars") {
		vars[key] = value
	}
	for key, value := range taskVars {
		vars[key] = value
	}
	return vars
}

// openStorage builds the internal blob store from config. The default is a
// disk-backed store; setting storage.driver to "minio" keeps blobs on an
// S3-compatible bucket instead.
func openStorage(cmd *cobra.Command) (storage.Store, error) {
	if viper.GetString("storage.driver") == "minio" {
		return minio.New(cmd.Context(), minio.Config{
			Endpoint:  viper.GetString("storage.minio.endpoint"),
			AccessKey: viper.GetString("storage.minio.access_key"),
			SecretKey: viper.GetString("storage.minio.secret_key"),
			UseSSL:    viper.GetBool("storage.minio.use_ssl"),
			Region:    viper.GetString("storage.minio.region"),
			Bucket:    viper.GetString("storage.minio.bucket"),
		})
	}
	return local.New(resolveStorageDir())
}

func resolveStorageDir() string {
	if storageDir != "" {
		return storageDir
	}
	if configured := viper.GetString("storage_dir"); configured != "" {
		return configured
	}
	home, err := homedir.Dir()
	if err != nil {
		return filepath.Join(os.TempDir(), "flowtask-storage")
	}
	return filepath.Join(home, ".flowtask", "storage")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
