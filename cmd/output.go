package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"
	config "github.com/tupyy/fpintro/configuration"
	"github.com/tupyy/fpintro/internal/entity"
	"github.com/tupyy/fpintro/internal/forum"
	"github.com/tupyy/fpintro/internal/sorting"
	"sigs.k8s.io/yaml"
)

func printResult(w io.Writer, v any) error {
	return printAs(w, config.GetOutputFormat(), v)
}

func printAs(w io.Writer, format string, v any) error {
	switch format {
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("cannot marshal to yaml '%w'", err)
		}
		_, err = w.Write(data)
		return err
	case "table":
		data, ok := tableData(v)
		if !ok {
			return printAs(w, "json", v)
		}
		out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, out)
		return err
	case "json", "":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("cannot marshal to json '%w'", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	default:
		return fmt.Errorf("unknown output format '%s'", format)
	}
}

func tableData(v any) ([][]string, bool) {
	switch t := v.(type) {
	case []entity.PostSummary:
		data := [][]string{{"ID", "Title", "Author", "URL"}}
		for _, p := range t {
			data = append(data, []string{p.ID, p.Title, p.Author, p.URL.String()})
		}
		return data, true
	case []sorting.Person:
		data := [][]string{{"ID", "Name", "Age"}}
		for _, p := range t {
			data = append(data, []string{strconv.Itoa(p.ID), p.Name, strconv.Itoa(p.Age)})
		}
		return data, true
	case []forum.Thread:
		data := [][]string{{"Post", "Title", "Comment"}}
		for _, th := range t {
			for _, c := range th.Comments {
				data = append(data, []string{th.Post.ID, th.Post.Title, c})
			}
		}
		return data, true
	case *entity.ErrorResponse:
		return [][]string{{"Message", "Code"}, {t.Message, strconv.Itoa(t.Code)}}, true
	default:
		return nil, false
	}
}
