package rules

// Defaults returns the built-in catalogue of conflicting property families.
//
// Matchers that must win over a catch-all in the same family are listed as
// exact names or as longer prefixes: "text-sm" (font size) resolves ahead of
// "text-" (text color) and "padding-top" ("pt-") never collides with
// "padding" ("p-") because neither prefix contains the other.
func Defaults() []Rule {
	// Copy so callers can't mutate the shared catalogue.
	out := make([]Rule, len(catalogue))
	for i, r := range catalogue {
		out[i] = Rule{Group: r.Group, Matchers: append([]string(nil), r.Matchers...)}
	}
	return out
}

var catalogue = []Rule{
	// Layout
	{"display", []string{
		"block", "inline-block", "inline", "flex", "inline-flex", "table", "inline-table",
		"table-caption", "table-cell", "table-column", "table-column-group",
		"table-footer-group", "table-header-group", "table-row-group", "table-row",
		"flow-root", "grid", "inline-grid", "contents", "list-item", "hidden",
	}},
	{"position", []string{"static", "fixed", "absolute", "relative", "sticky"}},
	{"visibility", []string{"visible", "invisible", "collapse"}},
	{"box-sizing", []string{"box-border", "box-content"}},
	{"float", []string{"float-"}},
	{"clear", []string{"clear-"}},
	{"isolation", []string{"isolate", "isolation-auto"}},
	{"object-fit", []string{"object-contain", "object-cover", "object-fill", "object-none", "object-scale-down"}},
	{"object-position", []string{"object-"}},
	{"overflow", []string{"overflow-"}},
	{"overflow-x", []string{"overflow-x-"}},
	{"overflow-y", []string{"overflow-y-"}},
	{"overscroll", []string{"overscroll-"}},
	{"overscroll-x", []string{"overscroll-x-"}},
	{"overscroll-y", []string{"overscroll-y-"}},
	{"inset", []string{"inset-"}},
	{"inset-x", []string{"inset-x-"}},
	{"inset-y", []string{"inset-y-"}},
	{"top", []string{"top-"}},
	{"right", []string{"right-"}},
	{"bottom", []string{"bottom-"}},
	{"left", []string{"left-"}},
	{"start", []string{"start-"}},
	{"end", []string{"end-"}},
	{"z-index", []string{"z-"}},
	{"columns", []string{"columns-"}},
	{"aspect-ratio", []string{"aspect-"}},
	{"sr-only", []string{"sr-only", "not-sr-only"}},

	// Flexbox and grid
	{"flex-basis", []string{"basis-"}},
	{"flex-direction", []string{"flex-row", "flex-row-reverse", "flex-col", "flex-col-reverse"}},
	{"flex-wrap", []string{"flex-wrap", "flex-wrap-reverse", "flex-nowrap"}},
	{"flex", []string{"flex-1", "flex-auto", "flex-initial", "flex-none", "flex-"}},
	{"flex-grow", []string{"grow", "grow-"}},
	{"flex-shrink", []string{"shrink", "shrink-"}},
	{"order", []string{"order-"}},
	{"grid-template-columns", []string{"grid-cols-"}},
	{"grid-column", []string{"col-auto", "col-span-", "col-"}},
	{"grid-column-start", []string{"col-start-"}},
	{"grid-column-end", []string{"col-end-"}},
	{"grid-template-rows", []string{"grid-rows-"}},
	{"grid-row", []string{"row-auto", "row-span-", "row-"}},
	{"grid-row-start", []string{"row-start-"}},
	{"grid-row-end", []string{"row-end-"}},
	{"grid-auto-flow", []string{"grid-flow-"}},
	{"grid-auto-columns", []string{"auto-cols-"}},
	{"grid-auto-rows", []string{"auto-rows-"}},
	{"gap", []string{"gap-"}},
	{"gap-x", []string{"gap-x-"}},
	{"gap-y", []string{"gap-y-"}},
	{"justify-content", []string{"justify-"}},
	{"justify-items", []string{"justify-items-"}},
	{"justify-self", []string{"justify-self-"}},
	{"align-content", []string{
		"content-normal", "content-center", "content-start", "content-end", "content-between",
		"content-around", "content-evenly", "content-baseline", "content-stretch",
	}},
	{"content", []string{"content-"}},
	{"align-items", []string{"items-"}},
	{"align-self", []string{"self-"}},
	{"place-content", []string{"place-content-"}},
	{"place-items", []string{"place-items-"}},
	{"place-self", []string{"place-self-"}},

	// Spacing
	{"padding", []string{"p-"}},
	{"padding-x", []string{"px-"}},
	{"padding-y", []string{"py-"}},
	{"padding-start", []string{"ps-"}},
	{"padding-end", []string{"pe-"}},
	{"padding-top", []string{"pt-"}},
	{"padding-right", []string{"pr-"}},
	{"padding-bottom", []string{"pb-"}},
	{"padding-left", []string{"pl-"}},
	{"margin", []string{"m-"}},
	{"margin-x", []string{"mx-"}},
	{"margin-y", []string{"my-"}},
	{"margin-start", []string{"ms-"}},
	{"margin-end", []string{"me-"}},
	{"margin-top", []string{"mt-"}},
	{"margin-right", []string{"mr-"}},
	{"margin-bottom", []string{"mb-"}},
	{"margin-left", []string{"ml-"}},
	{"space-x", []string{"space-x-"}},
	{"space-y", []string{"space-y-"}},
	{"space-x-reverse", []string{"space-x-reverse"}},
	{"space-y-reverse", []string{"space-y-reverse"}},

	// Sizing
	{"width", []string{"w-"}},
	{"min-width", []string{"min-w-"}},
	{"max-width", []string{"max-w-"}},
	{"height", []string{"h-"}},
	{"min-height", []string{"min-h-"}},
	{"max-height", []string{"max-h-"}},
	{"size", []string{"size-"}},

	// Typography
	{"font-size", []string{
		"text-xs", "text-sm", "text-base", "text-lg", "text-xl", "text-2xl", "text-3xl",
		"text-4xl", "text-5xl", "text-6xl", "text-7xl", "text-8xl", "text-9xl",
	}},
	{"text-align", []string{"text-left", "text-center", "text-right", "text-justify", "text-start", "text-end"}},
	{"text-overflow", []string{"truncate", "text-ellipsis", "text-clip"}},
	{"text-wrap", []string{"text-wrap", "text-nowrap", "text-balance", "text-pretty"}},
	{"text-color", []string{"text-"}},
	{"font-family", []string{"font-sans", "font-serif", "font-mono"}},
	{"font-weight", []string{
		"font-thin", "font-extralight", "font-light", "font-normal", "font-medium",
		"font-semibold", "font-bold", "font-extrabold", "font-black", "font-",
	}},
	{"font-style", []string{"italic", "not-italic"}},
	{"font-smoothing", []string{"antialiased", "subpixel-antialiased"}},
	{"text-decoration-line", []string{"underline", "overline", "line-through", "no-underline"}},
	{"text-decoration-style", []string{
		"decoration-solid", "decoration-double", "decoration-dotted", "decoration-dashed", "decoration-wavy",
	}},
	{"text-decoration-thickness", []string{
		"decoration-auto", "decoration-from-font", "decoration-0", "decoration-1",
		"decoration-2", "decoration-4", "decoration-8",
	}},
	{"text-decoration-color", []string{"decoration-"}},
	{"underline-offset", []string{"underline-offset-"}},
	{"text-transform", []string{"uppercase", "lowercase", "capitalize", "normal-case"}},
	{"whitespace", []string{"whitespace-"}},
	{"word-break", []string{"break-normal", "break-words", "break-all", "break-keep"}},
	{"line-height", []string{"leading-"}},
	{"letter-spacing", []string{"tracking-"}},
	{"line-clamp", []string{"line-clamp-"}},
	{"text-indent", []string{"indent-"}},
	{"vertical-align", []string{"align-"}},
	{"list-style-position", []string{"list-inside", "list-outside"}},
	{"list-style-type", []string{"list-"}},

	// Backgrounds
	{"bg-attachment", []string{"bg-fixed", "bg-local", "bg-scroll"}},
	{"bg-clip", []string{"bg-clip-"}},
	{"bg-origin", []string{"bg-origin-"}},
	{"bg-size", []string{"bg-auto", "bg-cover", "bg-contain"}},
	{"bg-position", []string{
		"bg-bottom", "bg-center", "bg-left", "bg-left-bottom", "bg-left-top",
		"bg-right", "bg-right-bottom", "bg-right-top", "bg-top",
	}},
	{"bg-repeat", []string{
		"bg-repeat", "bg-no-repeat", "bg-repeat-x", "bg-repeat-y", "bg-repeat-round", "bg-repeat-space",
	}},
	{"bg-image", []string{"bg-none", "bg-gradient-to-"}},
	{"bg-blend", []string{"bg-blend-"}},
	{"bg-color", []string{"bg-"}},
	{"gradient-from", []string{"from-"}},
	{"gradient-via", []string{"via-"}},
	{"gradient-to", []string{"to-"}},

	// Borders
	{"rounded", []string{"rounded", "rounded-"}},
	{"rounded-s", []string{"rounded-s", "rounded-s-"}},
	{"rounded-e", []string{"rounded-e", "rounded-e-"}},
	{"rounded-t", []string{"rounded-t", "rounded-t-"}},
	{"rounded-r", []string{"rounded-r", "rounded-r-"}},
	{"rounded-b", []string{"rounded-b", "rounded-b-"}},
	{"rounded-l", []string{"rounded-l", "rounded-l-"}},
	{"rounded-ss", []string{"rounded-ss", "rounded-ss-"}},
	{"rounded-se", []string{"rounded-se", "rounded-se-"}},
	{"rounded-ee", []string{"rounded-ee", "rounded-ee-"}},
	{"rounded-es", []string{"rounded-es", "rounded-es-"}},
	{"rounded-tl", []string{"rounded-tl", "rounded-tl-"}},
	{"rounded-tr", []string{"rounded-tr", "rounded-tr-"}},
	{"rounded-br", []string{"rounded-br", "rounded-br-"}},
	{"rounded-bl", []string{"rounded-bl", "rounded-bl-"}},
	{"border-width", []string{"border", "border-0", "border-2", "border-4", "border-8"}},
	{"border-width-x", []string{"border-x", "border-x-0", "border-x-2", "border-x-4", "border-x-8"}},
	{"border-width-y", []string{"border-y", "border-y-0", "border-y-2", "border-y-4", "border-y-8"}},
	{"border-width-s", []string{"border-s", "border-s-0", "border-s-2", "border-s-4", "border-s-8"}},
	{"border-width-e", []string{"border-e", "border-e-0", "border-e-2", "border-e-4", "border-e-8"}},
	{"border-width-t", []string{"border-t", "border-t-0", "border-t-2", "border-t-4", "border-t-8"}},
	{"border-width-r", []string{"border-r", "border-r-0", "border-r-2", "border-r-4", "border-r-8"}},
	{"border-width-b", []string{"border-b", "border-b-0", "border-b-2", "border-b-4", "border-b-8"}},
	{"border-width-l", []string{"border-l", "border-l-0", "border-l-2", "border-l-4", "border-l-8"}},
	{"border-style", []string{
		"border-solid", "border-dashed", "border-dotted", "border-double", "border-hidden", "border-none",
	}},
	{"border-collapse", []string{"border-collapse", "border-separate"}},
	{"border-spacing", []string{"border-spacing-"}},
	{"border-spacing-x", []string{"border-spacing-x-"}},
	{"border-spacing-y", []string{"border-spacing-y-"}},
	{"border-color-x", []string{"border-x-"}},
	{"border-color-y", []string{"border-y-"}},
	{"border-color-s", []string{"border-s-"}},
	{"border-color-e", []string{"border-e-"}},
	{"border-color-t", []string{"border-t-"}},
	{"border-color-r", []string{"border-r-"}},
	{"border-color-b", []string{"border-b-"}},
	{"border-color-l", []string{"border-l-"}},
	{"border-color", []string{"border-"}},
	{"divide-x", []string{"divide-x", "divide-x-0", "divide-x-2", "divide-x-4", "divide-x-8"}},
	{"divide-y", []string{"divide-y", "divide-y-0", "divide-y-2", "divide-y-4", "divide-y-8"}},
	{"divide-x-reverse", []string{"divide-x-reverse"}},
	{"divide-y-reverse", []string{"divide-y-reverse"}},
	{"divide-style", []string{
		"divide-solid", "divide-dashed", "divide-dotted", "divide-double", "divide-none",
	}},
	{"divide-color", []string{"divide-"}},
	{"outline-style", []string{"outline", "outline-none", "outline-dashed", "outline-dotted", "outline-double"}},
	{"outline-width", []string{"outline-0", "outline-1", "outline-2", "outline-4", "outline-8"}},
	{"outline-offset", []string{"outline-offset-"}},
	{"outline-color", []string{"outline-"}},
	{"ring-width", []string{"ring", "ring-0", "ring-1", "ring-2", "ring-4", "ring-8"}},
	{"ring-inset", []string{"ring-inset"}},
	{"ring-offset-width", []string{"ring-offset-0", "ring-offset-1", "ring-offset-2", "ring-offset-4", "ring-offset-8"}},
	{"ring-offset-color", []string{"ring-offset-"}},
	{"ring-color", []string{"ring-"}},

	// Effects
	{"shadow", []string{
		"shadow", "shadow-sm", "shadow-md", "shadow-lg", "shadow-xl", "shadow-2xl", "shadow-inner", "shadow-none",
	}},
	{"shadow-color", []string{"shadow-"}},
	{"opacity", []string{"opacity-"}},
	{"mix-blend", []string{"mix-blend-"}},

	// Filters
	{"blur", []string{"blur", "blur-"}},
	{"brightness", []string{"brightness-"}},
	{"contrast", []string{"contrast-"}},
	{"drop-shadow", []string{"drop-shadow", "drop-shadow-"}},
	{"grayscale", []string{"grayscale", "grayscale-"}},
	{"hue-rotate", []string{"hue-rotate-"}},
	{"invert", []string{"invert", "invert-"}},
	{"saturate", []string{"saturate-"}},
	{"sepia", []string{"sepia", "sepia-"}},
	{"backdrop-blur", []string{"backdrop-blur", "backdrop-blur-"}},

	// Transitions and animation
	{"transition", []string{"transition", "transition-"}},
	{"duration", []string{"duration-"}},
	{"ease", []string{"ease-"}},
	{"delay", []string{"delay-"}},
	{"animate", []string{"animate-"}},

	// Transforms
	{"scale", []string{"scale-"}},
	{"scale-x", []string{"scale-x-"}},
	{"scale-y", []string{"scale-y-"}},
	{"rotate", []string{"rotate-"}},
	{"translate-x", []string{"translate-x-"}},
	{"translate-y", []string{"translate-y-"}},
	{"skew-x", []string{"skew-x-"}},
	{"skew-y", []string{"skew-y-"}},
	{"transform-origin", []string{"origin-"}},

	// Interactivity
	{"accent-color", []string{"accent-"}},
	{"appearance", []string{"appearance-"}},
	{"caret-color", []string{"caret-"}},
	{"cursor", []string{"cursor-"}},
	{"pointer-events", []string{"pointer-events-"}},
	{"resize", []string{"resize", "resize-"}},
	{"scroll-behavior", []string{"scroll-auto", "scroll-smooth"}},
	{"user-select", []string{"select-"}},
	{"touch-action", []string{"touch-"}},
	{"will-change", []string{"will-change-"}},

	// Tables
	{"table-layout", []string{"table-auto", "table-fixed"}},

	// SVG
	{"fill", []string{"fill-"}},
	{"stroke-width", []string{"stroke-0", "stroke-1", "stroke-2"}},
	{"stroke", []string{"stroke-"}},
}
