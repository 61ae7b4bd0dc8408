package main

import (
	"context"
	"fmt"
	"os"

	"github.com/vsinha/linebalance/pkg/linebalance"
)

// A small men's shirt line: two preparation sections feeding final assembly.
const shirtLine = `no,section,flow,machine,process,smv,ct,part
1,Front,F1,SNLS,Join shoulder seam,40,38,Front panel
2,Front,F2,OL,Attach front placket,35,36,Front panel
3,Front,F3,SNLS,Topstitch placket,25,24,Front panel
4,Sleeve,S1,OL,Hem sleeve opening,30,31,Sleeve
5,Sleeve,S2,SNLS,Attach cuff,45,47,Cuff
6,Assembly,A1,OL,Set sleeves,55,56,Body
7,Assembly,A2,OL,Close side seams,60,58,Body
8,Assembly,A3,DNLS,Attach collar,50,52,Collar
`

func main() {
	ctx := context.Background()

	line, err := linebalance.Load([]byte(shirtLine))
	if err != nil {
		fmt.Printf("❌ Failed to load process sheet: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("🧵 Balancing a men's shirt sewing line...")
	fmt.Printf("Sections: %v\n\n", line.Sections())

	// First size the line for the headcount we actually have
	analysis, err := line.Analyze(ctx, 8)
	if err != nil {
		fmt.Printf("❌ Takt analysis failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("📐 Takt Analysis (8 operators, SMV):")
	fmt.Printf("  Line total: %gs   Takt time: %gs\n", analysis.SMVData.TotalTime, analysis.SMVData.TaktTime)
	operators := make(map[string]int, len(analysis.SMVData.Sections))
	for _, section := range analysis.SMVData.Sections {
		fmt.Printf("  %-10s needs %.2f operators → assign %d\n",
			section.Name, section.Theoretical, section.Suggested)
		operators[section.Name] = section.Suggested
	}
	fmt.Println()

	// Then balance with the suggested split
	report, err := line.Balance(ctx, operators, "smv")
	if err != nil {
		fmt.Printf("❌ Balancing failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("📊 Balance Results:")
	fmt.Printf("  Bottleneck: %gs\n", report.Bottleneck)
	fmt.Printf("  Output: %d pcs/hr\n", report.Output)
	fmt.Printf("  Efficiency: %g%%\n", report.EffSMV)
	fmt.Printf("  Line balance: %g%%\n\n", report.LineBalanceEff)

	for _, section := range report.SectionsResults {
		fmt.Printf("🧵 %s (%d operators)\n", section.Name, section.NumOps)
		for _, op := range section.Operators {
			fmt.Printf("  %-6s %6.2fs  [%s]\n", op.Op, op.Sec, op.Color)
			for _, task := range op.Tasks {
				fmt.Printf("         • %s (%.2fs)\n", task.Desc, task.Time)
			}
		}
		fmt.Println()
	}

	if report.Suggest != "" {
		fmt.Printf("💡 %s\n\n", report.Suggest)
	}

	// Finally print the floor worksheet as CSV
	worksheet, err := line.Worksheet(ctx, operators, "smv")
	if err != nil {
		fmt.Printf("❌ Worksheet failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("📋 Operator Worksheet:")
	if err := worksheet.WriteCSV(os.Stdout); err != nil {
		fmt.Printf("❌ Worksheet write failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println()

	fmt.Println("✅ Line balancing complete!")
}
