package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"flowsim/calculator"
	"flowsim/channel"
	"flowsim/material"
	"flowsim/model"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var (
		key     string
		jsonOut bool
		req     model.MaterialReqData
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one simulation for a catalog material",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			catalog, err := material.Load(file)
			if err != nil {
				return err
			}
			m, err := catalog.Get(key)
			if err != nil {
				return err
			}

			in := channel.Compose(channel.LoadSetup(file).Override(req), m)
			result, err := calculator.NewCalculator(calculator.LoadConfig(file)).Run(in)
			if err != nil {
				return err
			}
			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			return printResult(cmd.OutOrStdout(), m, result)
		},
	}
	cmd.Flags().StringVarP(&key, "material", "m", "", "Material key in the catalog")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	cmd.Flags().Float64Var(&req.Width, "width", 0, "Channel width W, m")
	cmd.Flags().Float64Var(&req.Depth, "depth", 0, "Channel depth H, m")
	cmd.Flags().Float64Var(&req.Length, "length", 0, "Channel length L, m")
	cmd.Flags().Float64Var(&req.CoverSpeed, "cover-speed", 0, "Cover speed Vu, m/s")
	cmd.Flags().Float64Var(&req.CoverTemp, "cover-temp", 0, "Cover temperature Tu, °C")
	cmd.Flags().Float64Var(&req.Step, "step", 0, "Calculation step Δz, m")
	_ = cmd.MarkFlagRequired("material")
	return cmd
}

func printResult(w io.Writer, m material.Material, r model.SimulationResult) error {
	fmt.Fprintf(w, "material:      %s\n", m.Name)
	fmt.Fprintf(w, "F:             %.6g\n", r.ShapeFactor)
	fmt.Fprintf(w, "QCH (m3/s):    %.6g\n", r.FlowRate)
	fmt.Fprintf(w, "gamma (1/s):   %.6g\n", r.ShearRate)
	fmt.Fprintf(w, "productivity:  %.6g kg/h\n", r.Productivity)
	fmt.Fprintf(w, "final T:       %.6g °C\n", r.FinalTemp)
	fmt.Fprintf(w, "final eta:     %.6g Pa·s\n\n", r.FinalViscosity)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "z, m\tT, °C\teta, Pa·s")
	for i := range r.Positions {
		fmt.Fprintf(tw, "%.4f\t%.2f\t%.4g\n", r.Positions[i], r.Temperatures[i], r.Viscosities[i])
	}
	return tw.Flush()
}
