package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mtmuztaba/portfolio/internal/config"
	"github.com/mtmuztaba/portfolio/internal/export"
	"github.com/mtmuztaba/portfolio/internal/view"
)

var (
	exportView   string
	exportOutput string
	exportURL    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a view of the running site to PDF",
	Long: `Render one view of a running portfolio server in headless Chrome with every
image panel expanded and save it as a PDF. Requires Chrome or Chromium.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportView, "view", string(view.Default), "View to export (all, cad, design)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "portfolio.pdf", "Output PDF file")
	exportCmd.Flags().StringVar(&exportURL, "url", "", "Site base URL (overrides SITE_URL)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	v, err := view.Parse(exportView)
	if err != nil {
		return err
	}

	baseURL := exportURL
	if baseURL == "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		baseURL = cfg.SiteURL
	}

	pdf, err := export.New().PDF(cmd.Context(), baseURL, v)
	if err != nil {
		return err
	}
	if err := os.WriteFile(exportOutput, pdf, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOutput, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", exportOutput, len(pdf))
	return nil
}
