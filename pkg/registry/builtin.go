package registry

import "github.com/m-mizutani/docdive/pkg/domain/model"

// builtinLibraries is the seed table of well-known libraries. Star counts are
// an informational ranking signal, not kept in sync with upstream.
var builtinLibraries = []model.Library{
	{
		Name:        "react",
		Description: "The library for web and native user interfaces",
		Category:    "frontend",
		Tags:        []string{"ui", "javascript", "components"},
		Stars:       230000,
		Repos: []model.RepositoryDescriptor{
			{Owner: "reactjs", Repo: "react.dev", Path: "src/content/learn"},
			{Owner: "facebook", Repo: "react", Path: "README.md"},
		},
	},
	{
		Name:        "vue",
		Description: "Progressive JavaScript framework",
		Category:    "frontend",
		Tags:        []string{"ui", "javascript"},
		Stars:       208000,
		Repos: []model.RepositoryDescriptor{
			{Owner: "vuejs", Repo: "docs", Path: "src/guide"},
		},
	},
	{
		Name:        "svelte",
		Description: "Cybernetically enhanced web apps",
		Category:    "frontend",
		Tags:        []string{"ui", "javascript", "compiler"},
		Stars:       80000,
		Repos: []model.RepositoryDescriptor{
			{Owner: "sveltejs", Repo: "svelte", Path: "documentation/docs"},
		},
	},
	{
		Name:        "tailwindcss",
		Description: "Utility-first CSS framework",
		Category:    "frontend",
		Tags:        []string{"css", "design"},
		Stars:       84000,
		Repos: []model.RepositoryDescriptor{
			{Owner: "tailwindlabs", Repo: "tailwindcss.com", Path: "src/docs"},
		},
	},
	{
		Name:        "nextjs",
		Description: "The React framework for the web",
		Category:    "fullstack",
		Tags:        []string{"react", "ssr", "javascript"},
		Stars:       127000,
		Repos: []model.RepositoryDescriptor{
			{Owner: "vercel", Repo: "next.js", Path: "docs"},
		},
	},
	{
		Name:        "express",
		Description: "Fast, unopinionated, minimalist web framework for Node.js",
		Category:    "backend",
		Tags:        []string{"http", "javascript", "server"},
		Stars:       65000,
		Repos: []model.RepositoryDescriptor{
			{Owner: "expressjs", Repo: "express", Path: "Readme.md"},
		},
	},
	{
		Name:        "fastapi",
		Description: "High performance Python web framework",
		Category:    "backend",
		Tags:        []string{"python", "http", "async"},
		Stars:       76000,
		Repos: []model.RepositoryDescriptor{
			{Owner: "fastapi", Repo: "fastapi", Path: "docs/en/docs"},
		},
	},
	{
		Name:        "django",
		Description: "The web framework for perfectionists with deadlines",
		Category:    "backend",
		Tags:        []string{"python", "orm", "http"},
		Stars:       79000,
		Repos: []model.RepositoryDescriptor{
			{Owner: "django", Repo: "django", Path: "docs/intro"},
		},
	},
	{
		Name:        "gin",
		Description: "HTTP web framework written in Go",
		Category:    "backend",
		Tags:        []string{"go", "http"},
		Stars:       78000,
		Repos: []model.RepositoryDescriptor{
			{Owner: "gin-gonic", Repo: "gin", Path: "docs"},
		},
	},
	{
		Name:        "pytorch",
		Description: "Tensors and dynamic neural networks in Python",
		Category:    "ml",
		Tags:        []string{"python", "deep-learning", "gpu"},
		Stars:       83000,
		Repos: []model.RepositoryDescriptor{
			{Owner: "pytorch", Repo: "pytorch", Path: "README.md"},
		},
	},
	{
		Name:        "tensorflow",
		Description: "Machine learning platform",
		Category:    "ml",
		Tags:        []string{"python", "deep-learning"},
		Stars:       186000,
		Repos: []model.RepositoryDescriptor{
			{Owner: "tensorflow", Repo: "docs", Path: "site/en/guide"},
		},
	},
	{
		Name:        "langchain",
		Description: "Framework for developing LLM applications",
		Category:    "ml",
		Tags:        []string{"python", "llm", "agents"},
		Stars:       94000,
		Repos: []model.RepositoryDescriptor{
			{Owner: "langchain-ai", Repo: "langchain", Path: "docs/docs"},
		},
	},
	{
		Name:        "kubernetes",
		Description: "Production-grade container orchestration",
		Category:    "infra",
		Tags:        []string{"go", "containers", "orchestration"},
		Stars:       110000,
		Repos: []model.RepositoryDescriptor{
			{Owner: "kubernetes", Repo: "website", Path: "content/en/docs/concepts"},
		},
	},
	{
		Name:        "terraform",
		Description: "Infrastructure as code",
		Category:    "infra",
		Tags:        []string{"go", "iac", "cloud"},
		Stars:       43000,
		Repos: []model.RepositoryDescriptor{
			{Owner: "hashicorp", Repo: "terraform", Path: "docs"},
		},
	},
	{
		Name:        "typescript",
		Description: "Typed superset of JavaScript",
		Category:    "language",
		Tags:        []string{"javascript", "compiler", "types"},
		Stars:       101000,
		Repos: []model.RepositoryDescriptor{
			{Owner: "microsoft", Repo: "TypeScript-Website", Path: "packages/documentation/copy/en/handbook-v2"},
		},
	},
	{
		Name:        "rust",
		Description: "The Rust programming language book",
		Category:    "language",
		Tags:        []string{"rust", "systems"},
		Stars:       98000,
		Repos: []model.RepositoryDescriptor{
			{Owner: "rust-lang", Repo: "book", Path: "src"},
		},
	},
}
