package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/diarioalimentar/backend/internal/types"
)

// The combined recipe string crosses the translation provider as one payload,
// so the delimiters must survive arbitrary recipe text. Every text field is
// escaped before joining: a literal delimiter (or escape rune) inside a title
// or step can never collide with a structural one, which makes DecodeRecipe an
// exact inverse of EncodeRecipe.
const (
	fieldSep = "<§§§>"
	itemSep  = "<<|>>"
	partSep  = "<&&&>"
	escRune  = '~'
)

var escaper = strings.NewReplacer(
	string(escRune), "~~",
	fieldSep, "~f",
	itemSep, "~i",
	partSep, "~p",
)

func escapeText(s string) string {
	return escaper.Replace(s)
}

func unescapeText(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] != escRune {
			b.WriteRune(runes[i])
			continue
		}
		i++
		if i >= len(runes) {
			return "", fmt.Errorf("dangling escape at end of text")
		}
		switch runes[i] {
		case escRune:
			b.WriteRune(escRune)
		case 'f':
			b.WriteString(fieldSep)
		case 'i':
			b.WriteString(itemSep)
		case 'p':
			b.WriteString(partSep)
		default:
			return "", fmt.Errorf("unknown escape sequence ~%c", runes[i])
		}
	}
	return b.String(), nil
}

// EncodeRecipe flattens a recipe into a single translatable string:
// title, instructions and the ingredient list joined by the field separator,
// ingredients joined by the item separator, ingredient parts by the part
// separator.
func EncodeRecipe(r *types.Recipe) string {
	items := make([]string, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		items = append(items, strings.Join([]string{
			escapeText(ing.Name),
			strconv.FormatFloat(ing.Quantity, 'f', -1, 64),
			escapeText(ing.Unit),
		}, partSep))
	}

	return strings.Join([]string{
		escapeText(r.Title),
		escapeText(r.Instructions),
		strings.Join(items, itemSep),
	}, fieldSep)
}

// DecodeRecipe parses a combined string produced by EncodeRecipe back into
// its three fields.
func DecodeRecipe(encoded string) (*types.Recipe, error) {
	fields := strings.Split(encoded, fieldSep)
	if len(fields) != 3 {
		return nil, fmt.Errorf("expected 3 recipe fields, got %d", len(fields))
	}

	title, err := unescapeText(fields[0])
	if err != nil {
		return nil, fmt.Errorf("decoding title: %w", err)
	}
	instructions, err := unescapeText(fields[1])
	if err != nil {
		return nil, fmt.Errorf("decoding instructions: %w", err)
	}

	recipe := &types.Recipe{
		Title:        title,
		Instructions: instructions,
		Ingredients:  []types.Ingredient{},
	}

	if fields[2] == "" {
		return recipe, nil
	}

	for _, item := range strings.Split(fields[2], itemSep) {
		parts := strings.Split(item, partSep)
		if len(parts) != 3 {
			return nil, fmt.Errorf("expected 3 ingredient parts, got %d", len(parts))
		}
		name, err := unescapeText(parts[0])
		if err != nil {
			return nil, fmt.Errorf("decoding ingredient name: %w", err)
		}
		quantity, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("decoding ingredient quantity: %w", err)
		}
		unit, err := unescapeText(parts[2])
		if err != nil {
			return nil, fmt.Errorf("decoding ingredient unit: %w", err)
		}
		recipe.Ingredients = append(recipe.Ingredients, types.Ingredient{
			Name:     name,
			Quantity: quantity,
			Unit:     unit,
		})
	}

	return recipe, nil
}
