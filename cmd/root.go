package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/roadsight-ai/go-predict/models"
)

var (
	// CLI flags for the prediction pipeline
	inputPath   string // Path to the input image
	useEdges    bool   // Replace the input with its edge map before inference
	modelName   string // Model variant to run
	outChannels int    // Number of output channels produced by the model
	weightsPath string // Path to the serialized model file
	outputPath  string // Path the visualization is written to
	vanishing   bool   // Export the vanishing point grid overlay
	logLevel    string // Log verbosity level
	backendName string // Compute backend (auto, cpu, cuda)
)

// rootCmd runs a single prediction; there are no subcommands.
var rootCmd = &cobra.Command{
	Use:   "go-predict",
	Short: "Run a pretrained vision model on one image and export the result",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		opts := Options{
			InputPath:   inputPath,
			Edges:       useEdges,
			Model:       modelName,
			Channels:    outChannels,
			WeightsPath: weightsPath,
			OutputPath:  outputPath,
			Vanishing:   vanishing,
			Backend:     backendName,
		}

		if err := Predict(opts); err != nil {
			logrus.Fatalf("Prediction failed: %v", err)
		}
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags
func init() {
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "input.png", "path to input file")
	rootCmd.Flags().BoolVarP(&useEdges, "edges", "e", false, "run on the edge map of the input")
	rootCmd.Flags().StringVarP(&modelName, "model", "m", string(models.DefaultName),
		"model to use for prediction (densenet121, densenet161, small, unet, midas)")
	rootCmd.Flags().IntVarP(&outChannels, "channels", "c", 2, "number of output channels")
	rootCmd.Flags().StringVarP(&weightsPath, "weights", "w", "weights.onnx", "path to serialized model file")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "output.png", "path to output file")
	rootCmd.Flags().BoolVarP(&vanishing, "vanishing", "v", false, "export the vanishing point grid overlay")
	rootCmd.Flags().StringVar(&logLevel, "log", "info", "log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.Flags().StringVar(&backendName, "backend", "auto", "compute backend (auto, cpu, cuda)")
}
