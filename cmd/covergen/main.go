package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/youruser/covergen/internal/cover"
	"github.com/youruser/covergen/internal/presets"
	"github.com/youruser/covergen/internal/qr"
	"github.com/youruser/covergen/internal/util"
)

var (
	verbose    bool
	presetsDir string
	logger     *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "covergen",
	Short: "Render cover images, QR codes and presets from the command line",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		if presetsDir != "" {
			if _, err := presets.LoadDir(presetsDir, logger); err != nil {
				logger.Warn("loading custom presets", zap.Error(err))
			}
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var (
	renderSettings cover.CoverSettings
	gradientAngle  float64
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a cover image to a PNG file",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = fmt.Sprintf("cover-%d.png", time.Now().Unix())
		}
		// only an angle the user actually passed counts; 0 is a
		// valid horizontal gradient, not "unset"
		if cmd.Flags().Changed("angle") {
			renderSettings.GradientAngle = &gradientAngle
		}

		r := cover.NewRenderer(cover.WithLogger(logger))
		b, err := r.RenderPNG(cmd.Context(), renderSettings)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}

		if dir := filepath.Dir(out); dir != "." {
			if err := util.EnsureDir(dir); err != nil {
				return err
			}
		}
		if err := os.WriteFile(out, b, 0o644); err != nil {
			return err
		}
		logger.Info("cover written", zap.String("path", out), zap.Int("bytes", len(b)))
		return nil
	},
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List available size, gradient, font, theme and pattern presets",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("sizes:")
		for _, p := range cover.Sizes() {
			fmt.Printf("  %-12s %4dx%-4d %s\n", p.ID, p.Width, p.Height, p.Name)
		}
		fmt.Println("gradients:")
		for _, p := range cover.Gradients() {
			fmt.Printf("  %-12s %v\n", p.ID, p.Colors)
		}
		fmt.Println("fonts:")
		for _, f := range cover.Fonts() {
			fmt.Printf("  %-12s %s\n", f.ID, f.Name)
		}
		fmt.Printf("themes:   %v\n", cover.Themes())
		fmt.Printf("patterns: %v\n", cover.Patterns())
	},
}

var qrCmd = &cobra.Command{
	Use:   "qr [text]",
	Short: "Render a QR code to a PNG file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		size, _ := cmd.Flags().GetInt("size")
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = fmt.Sprintf("qr-%d.png", time.Now().Unix())
		}
		b, err := qr.GeneratePNG(args[0], size)
		if err != nil {
			return err
		}
		if err := os.WriteFile(out, b, 0o644); err != nil {
			return err
		}
		logger.Info("qr written", zap.String("path", out))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&presetsDir, "presets-dir", "", "directory with custom preset yaml files")

	f := renderCmd.Flags()
	f.StringVar(&renderSettings.Title, "title", "Hello World", "title text")
	f.StringVar(&renderSettings.Subtitle, "subtitle", "", "subtitle text")
	f.StringVar(&renderSettings.Author, "author", "", "author name")
	f.StringVar(&renderSettings.Size, "size", "twitter", "size preset id")
	f.IntVar(&renderSettings.Width, "width", 0, "custom width (size=custom)")
	f.IntVar(&renderSettings.Height, "height", 0, "custom height (size=custom)")
	f.StringVar(&renderSettings.Gradient, "gradient", "", "gradient preset id")
	f.StringVar(&renderSettings.GradientFrom, "from", "", "custom gradient start color")
	f.StringVar(&renderSettings.GradientTo, "to", "", "custom gradient end color")
	f.Float64Var(&gradientAngle, "angle", 0, "gradient angle in degrees (default 135)")
	f.StringVar(&renderSettings.Pattern, "pattern", "none", "overlay pattern id")
	f.Float64Var(&renderSettings.PatternOpacity, "pattern-opacity", 0.1, "pattern opacity 0-1")
	f.StringVar(&renderSettings.Theme, "theme", "centered", "theme id")
	f.StringVar(&renderSettings.Font, "font", "inter", "font id")
	f.StringVar(&renderSettings.TextColor, "color", "#ffffff", "text color")
	f.StringVar(&renderSettings.TextAlign, "align", "center", "text alignment")
	f.Float64Var(&renderSettings.FontSize, "font-size", 64, "title font size in px")
	f.Float64Var(&renderSettings.Padding, "padding", 60, "canvas padding in px")
	f.BoolVar(&renderSettings.ShowAuthor, "show-author", true, "draw the author line")
	f.StringVar(&renderSettings.DevIcon, "icon", "none", "built-in icon id")
	f.StringVar(&renderSettings.CustomLogo, "logo", "", "logo path, URL or data URL")
	f.Float64Var(&renderSettings.LogoSize, "logo-size", 80, "logo size in px")
	f.StringP("out", "o", "", "output file (default cover-<timestamp>.png)")

	qrCmd.Flags().Int("size", 400, "image size in px")
	qrCmd.Flags().StringP("out", "o", "", "output file")

	rootCmd.AddCommand(renderCmd, presetsCmd, qrCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
